package anagram

// DiagnosticKind classifies a Diagnostic.
type DiagnosticKind int

const (
	// CacheMissing means no cache file existed at the cache path.
	CacheMissing DiagnosticKind = iota
	// CacheCorrupt means the cache file existed but could not be used.
	CacheCorrupt
	// CacheReused means the stored fingerprint matched and the cached index was adopted.
	CacheReused
	// Rebuilt means the index was rebuilt from the source file.
	Rebuilt
	// CachePersistFailure means the rebuilt index could not be written to disk.
	CachePersistFailure
)

func (k DiagnosticKind) String() string {
	switch k {
	case CacheMissing:
		return "cache-missing"
	case CacheCorrupt:
		return "cache-corrupt"
	case CacheReused:
		return "cache-reused"
	case Rebuilt:
		return "rebuilt"
	case CachePersistFailure:
		return "cache-persist-failure"
	default:
		return "unknown"
	}
}

// Rebuild reasons reported in Diagnostic.Reason.
const (
	ReasonForced              = "forced"
	ReasonNoCache             = "no-cache"
	ReasonFingerprintMismatch = "fingerprint-mismatch"
)

// Diagnostic describes one cache decision taken by Open.
type Diagnostic struct {
	Kind   DiagnosticKind
	Path   string // cache path
	Reason string // set for Rebuilt
	Err    error  // set for CacheCorrupt and CachePersistFailure
}
