package i18n

var en = map[string]string{
	// Columns
	"col_name":      "Name",
	"col_type":      "Type",
	"col_size":      "Size",
	"col_last_used": "Last used",
	"col_update":    "Update",
	"col_path":      "Path",
	"col_hash":      "Hash",
	"col_model_id":  "Model ID",
	"col_group":     "Group",

	// Values
	"never_used":   "never",
	"update_badge": "update",
	"unknown_type": "unknown",
	"all_types":    "all",

	// Summary
	"stats_summary":    "%d models, %d duplicates merged, %d groups, %s total",
	"stats_updates":    "%d with updates",
	"stats_filtered":   "showing %d of %d",
	"report_generated": "Generated %s, sorted by %s",

	// Browser
	"title":           "SageUtils Models",
	"loading":         "Loading model cache...",
	"no_models":       "No models found",
	"sort_label":      "Sort",
	"filter_label":    "Type",
	"notify_reloaded": "Reloaded %d models",
	"notify_errors":   "%d cache files failed to load",
	"notify_changed":  "Cache changed, reloading",
	"notify_saved":    "Saved sort %s",

	// Status bar
	"status_help":    "help",
	"status_sort":    "sort",
	"status_reverse": "reverse",
	"status_type":    "type",
	"status_refresh": "reload",
	"status_quit":    "quit",

	// Help
	"help_title":   "Keyboard Shortcuts",
	"help_nav":     "Navigation",
	"help_view":    "View",
	"help_general": "General",
	"help_up_down": "Move cursor",
	"help_top_end": "Jump to top / bottom",
	"help_page":    "Page up / down",
	"help_sort":    "Next sort field",
	"help_reverse": "Reverse sort direction",
	"help_type":    "Cycle type filter",
	"help_reload":  "Reload cache files",
	"help_help":    "Toggle help",
	"help_quit":    "Quit",
	"help_close":   "Press ? or esc to close",

	"help_settings": "Open settings",

	// Settings
	"settings":         "Settings",
	"setting_sort":     "Sort",
	"setting_language": "Language",
	"setting_watch":    "Watch cache",
	"setting_interval": "Poll interval",
	"settings_help":    "j/k select, h/l change, esc save and close",
	"on":               "on",
	"off":              "off",

	// Startup
	"terminal_too_small": "Terminal too small",
	"current_size":       "Current size: %dx%d (need 60x12)",
}
