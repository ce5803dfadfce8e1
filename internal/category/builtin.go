package category

import "slices"

// Built-in type group names, in classification order.
const (
	GroupDocuments = "Documents"
	GroupImages    = "Images"
	GroupVideos    = "Videos"
	GroupMusic     = "Music"
	GroupArchives  = "Archives"
)

// AllGroup is the type choice that pools every built-in group plus the
// custom extensions.
const AllGroup = "All"

var builtinGroups = []Category{
	{Name: GroupDocuments, Extensions: []string{".pdf", ".docx", ".doc", ".txt", ".xlsx", ".pptx"}},
	{Name: GroupImages, Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff"}},
	{Name: GroupVideos, Extensions: []string{".mp4", ".mov", ".avi", ".mkv", ".flv"}},
	{Name: GroupMusic, Extensions: []string{".mp3", ".wav", ".aac", ".flac"}},
	{Name: GroupArchives, Extensions: []string{".zip", ".tar", ".gz", ".rar", ".7z"}},
}

// DefaultConfig returns the built-in category configuration.
func DefaultConfig() Config {
	return Config(builtinGroups).Clone()
}

// Groups returns copies of the built-in type groups in their defined order.
func Groups() []Category {
	return Config(builtinGroups).Clone()
}

// GroupNames returns the selectable type names: AllGroup followed by the
// built-in groups.
func GroupNames() []string {
	names := make([]string, 0, len(builtinGroups)+1)
	names = append(names, AllGroup)
	for _, g := range builtinGroups {
		names = append(names, g.Name)
	}
	return names
}

// GroupExtensions returns the default extension set for a type choice.
// AllGroup yields every built-in list in group order followed by customs.
// The second result is false for an unknown group name.
func GroupExtensions(group string, customs []string) ([]string, bool) {
	if group == AllGroup {
		var all []string
		for _, g := range builtinGroups {
			all = append(all, g.Extensions...)
		}
		return append(all, customs...), true
	}
	for _, g := range builtinGroups {
		if g.Name == group {
			return slices.Clone(g.Extensions), true
		}
	}
	return nil, false
}

// IsBuiltin reports whether ext belongs to any built-in group.
func IsBuiltin(ext string) bool {
	for _, g := range builtinGroups {
		if slices.Contains(g.Extensions, ext) {
			return true
		}
	}
	return false
}
