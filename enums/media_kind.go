package enums

type MediaKind string

const (
	MediaKindVideo MediaKind = "video"
	MediaKindAudio MediaKind = "audio"
)

func ParseMediaKind(value string) (MediaKind, bool) {
	switch MediaKind(value) {
	case MediaKindVideo:
		return MediaKindVideo, true
	case MediaKindAudio:
		return MediaKindAudio, true
	}
	return "", false
}
