package domain

// PlayerScriptState tracks the one-shot load of the external player script.
type PlayerScriptState int

const (
	ScriptNotRequested PlayerScriptState = iota
	ScriptLoading
	ScriptReady
)

// PlaybackState is the per-card playback lifecycle for YouTube posts.
type PlaybackState int

const (
	PlaybackIdle PlaybackState = iota
	PlaybackLoading
	PlaybackPlaying
	PlaybackErrored
	PlaybackClosed
)

func (s PlaybackState) String() string {
	switch s {
	case PlaybackIdle:
		return "idle"
	case PlaybackLoading:
		return "loading"
	case PlaybackPlaying:
		return "playing"
	case PlaybackErrored:
		return "errored"
	case PlaybackClosed:
		return "closed"
	default:
		return "unknown"
	}
}
