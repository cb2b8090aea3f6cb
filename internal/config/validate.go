package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims paths and the export command and reports
// problems. Errors block a save; warnings are informational.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	out.App.DataDir = strings.TrimSpace(out.App.DataDir)
	out.App.StaticDir = strings.TrimSpace(out.App.StaticDir)
	out.History.Path = strings.TrimSpace(out.History.Path)
	out.Catalogue.Path = strings.TrimSpace(out.Catalogue.Path)
	out.Profile.Path = strings.TrimSpace(out.Profile.Path)
	out.Profile.Signature = strings.TrimSpace(out.Profile.Signature)

	var cmd []string
	for _, arg := range out.Export.Command {
		if arg = strings.TrimSpace(arg); arg != "" {
			cmd = append(cmd, arg)
		}
	}
	out.Export.Command = cmd

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}
	if out.History.Path == "" {
		res.addErr("history.path is required")
	}

	// recommend
	if out.Recommend.WindowDays < 0 {
		res.addErr("recommend.window_days must be >= 0")
	} else if out.Recommend.WindowDays > 365 {
		res.addWarn("recommend.window_days is %d; postings due in a year are rarely actionable.", out.Recommend.WindowDays)
	}
	if out.Recommend.MaxOfficial < 0 {
		res.addErr("recommend.max_official must be >= 0")
	}
	if out.Recommend.MaxSpeculative < 0 {
		res.addErr("recommend.max_speculative must be >= 0")
	}
	if out.Recommend.MaxOfficial == 0 && out.Recommend.MaxSpeculative == 0 {
		res.addWarn("recommend.max_official and max_speculative are both 0; searches will return nothing.")
	}

	// import
	if out.Import.MaxUploadMB <= 0 {
		res.addErr("import.max_upload_mb must be > 0")
	}
	if out.Import.PerMinute <= 0 {
		res.addErr("import.per_minute must be > 0")
	}
	if out.Import.Burst < 1 {
		res.addErr("import.burst must be >= 1")
	}

	// export
	if out.Export.TimeoutSeconds < 0 {
		res.addErr("export.timeout_seconds must be >= 0")
	}

	return out, res
}
