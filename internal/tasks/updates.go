package tasks

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	FetchProfile Phase = iota
	FetchOwned
	FetchCatalog
	ExportPlaylists
	WriteManifest
)

func (p Phase) String() string {
	switch p {
	case FetchProfile:
		return "fetch_profile"
	case FetchOwned:
		return "fetch_owned"
	case FetchCatalog:
		return "fetch_catalog"
	case ExportPlaylists:
		return "export_playlists"
	case WriteManifest:
		return "write_manifest"
	default:
		return ""
	}
}

func fetchProfileUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchProfile,
		Step:    1,
		Total:   1,
		Message: "Fetching teacher profile...",
	}
}

func fetchOwnedUpdate(name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchOwned,
		Step:    1,
		Total:   1,
		Message: "Fetching playlists for " + name + "...",
	}
}

func fetchCatalogUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchCatalog,
		Step:    1,
		Total:   1,
		Message: "Fetching the playlist catalog...",
	}
}

func exportingUpdate(step, total int, title string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportPlaylists,
		Step:    step,
		Total:   total,
		Message: "Exporting " + title + "...",
	}
}

func writeManifestUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteManifest,
		Step:    1,
		Total:   1,
		Message: "Writing export manifest...",
	}
}
