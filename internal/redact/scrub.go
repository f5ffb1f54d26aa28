package redact

// MaxInputLength is the hard ceiling on text accepted by ScrubText. Inputs
// beyond it return SentinelTooLarge instead of being scanned. Bounding input
// size is the reliable mitigation against adversarial slow inputs; a
// wall-clock timeout cannot abort matching already in flight and provides no
// real protection.
const MaxInputLength = 50000

// Scrubber ties together the pattern engine, key classifier, and result
// cache. Safe for concurrent use.
type Scrubber struct {
	classifier *Classifier
	engine     *Engine
	cache      *resultCache
}

// NewScrubber returns a Scrubber with the built-in pattern and name sets.
func NewScrubber() *Scrubber {
	c := NewClassifier()
	return &Scrubber{
		classifier: c,
		engine:     NewEngine(c),
		cache:      newResultCache(maxCacheEntries),
	}
}

// Classifier exposes the scrubber's key classifier so the policy loader can
// append user-supplied patterns before interception activates.
func (s *Scrubber) Classifier() *Classifier {
	return s.classifier
}

// ScrubText returns text with every recognized secret replaced by a
// placeholder. It is total: it never panics, and no failure path returns the
// original text.
func (s *Scrubber) ScrubText(text string) (out string) {
	if text == "" {
		return text
	}
	h := hashKey(text)
	if cached, ok := s.cache.get(h); ok {
		return cached
	}

	// Any unexpected failure inside pattern application degrades to the
	// failure sentinel, never to the unredacted input.
	defer func() {
		if r := recover(); r != nil {
			out = SentinelFailed
			s.cache.put(h, out)
		}
	}()

	if len(text) > MaxInputLength {
		s.cache.put(h, SentinelTooLarge)
		return SentinelTooLarge
	}

	out = s.engine.DetectAndReplace(text)
	s.cache.put(h, out)
	return out
}

// defaultScrubber is the process-wide pipeline instance shared by the
// package-level functions, the output interceptor, and the logger. Sharing
// one cache keeps explicit scrubbing and interception consistent.
var defaultScrubber = NewScrubber()

// Default returns the process-wide scrubber.
func Default() *Scrubber {
	return defaultScrubber
}

// ScrubText scrubs text through the process-wide scrubber.
func ScrubText(text string) string {
	return defaultScrubber.ScrubText(text)
}

// ScrubValue structurally redacts v through the process-wide scrubber.
func ScrubValue(v any) any {
	return defaultScrubber.ScrubValue(v)
}

// AddDenyPatterns appends user glob patterns to the process-wide sensitive
// name set.
func AddDenyPatterns(patterns ...string) {
	defaultScrubber.classifier.AddDenyPatterns(patterns...)
}

// AddAllowPatterns appends user glob patterns to the process-wide whitelist.
func AddAllowPatterns(patterns ...string) {
	defaultScrubber.classifier.AddAllowPatterns(patterns...)
}
