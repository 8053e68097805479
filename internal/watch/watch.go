package watch

// #region watch

// Watch is an immutable record of one viewing session for one video.
// Created by the driver when a video finishes or is abandoned.
type Watch struct {
	WatchTime   float64 // seconds actually watched
	VideoLength float64 // full video length in seconds
	VideoName   string
	Hashtags    []string
	Liked       bool
	Disliked    bool
	WatchedAt   uint64 // order-of-occurrence counter, 1 = first video
}

// AttentionRatio returns watch time over video length as an engagement proxy.
// Zero-length videos yield 0 rather than dividing by zero.
func (w Watch) AttentionRatio() float64 {
	if w.VideoLength == 0 {
		return 0
	}
	return w.WatchTime / w.VideoLength
}

// #endregion watch
