// Package installer drives the guarded dependency installation flow: consent,
// manifest filtering, a visible install session, and artifact cleanup. Every
// step is advisory; nothing here ever blocks the backend launch.
package installer

import (
	"context"
	"log"

	"voicebox/internal/dialog"
)

// Decision records how the install attempt was resolved.
type Decision int

const (
	// NotNeeded means the probe found nothing missing; no prompt was shown.
	NotNeeded Decision = iota
	// UserDeclined means the user answered no; nothing was installed.
	UserDeclined
	// UserApproved means the user consented and an install was attempted.
	UserApproved
	// PromptFailed means the consent dialog could not be rendered; treated
	// as a silent non-install, not as consent.
	PromptFailed
)

func (d Decision) String() string {
	switch d {
	case NotNeeded:
		return "not needed"
	case UserDeclined:
		return "user declined"
	case UserApproved:
		return "user approved"
	case PromptFailed:
		return "prompt failed"
	default:
		return "unknown"
	}
}

const (
	promptTitle   = "Missing Dependencies"
	promptMessage = "Voicebox requires Python dependencies (FastAPI, SQLAlchemy, etc.) that are missing in your global environment.\n\n" +
		"Do you want to install them now using pip?\n" +
		"(This will try to protect your existing PyTorch installation)"
)

// Orchestrator owns one install attempt per launch. It never re-probes after
// installing; its job is to attempt, not to guarantee.
type Orchestrator struct {
	Prompter dialog.Prompter
	Terminal Host
	Log      *log.Logger

	// ManifestName is looked up inside the backend directory.
	ManifestName string
	// ProtectedMarkers are excluded from the install target manifest.
	ProtectedMarkers []string
}

// Run executes the consent → filter → install → cleanup flow against the
// given backend directory. The returned decision reflects the user's answer;
// install failures past that point are logged, never escalated.
func (o *Orchestrator) Run(ctx context.Context, backendDir string) Decision {
	yes, err := o.Prompter.Confirm(ctx, promptTitle, promptMessage)
	if err != nil {
		o.Log.Printf("Launcher: Failed to show dialog: %v", err)
		return PromptFailed
	}
	if !yes {
		o.Log.Print("Launcher: User declined installation. Backend will likely fail.")
		return UserDeclined
	}

	o.Log.Print("Launcher: Starting dependency installation...")

	sourcePath, found := Locate(backendDir, o.ManifestName)
	if !found {
		o.Log.Printf("Launcher: Warning: %s not found.", o.ManifestName)
		return UserApproved
	}

	installTarget := sourcePath
	manifest, err := Filter(sourcePath, o.ProtectedMarkers)
	if err != nil {
		// Fall back to the unfiltered manifest rather than skipping the
		// install the user just approved.
		o.Log.Printf("Launcher: Failed to filter manifest, using original: %v", err)
	} else {
		installTarget = manifest.FilteredPath
	}

	script := GenerateScript(backendDir, installTarget)
	if err := script.Write(); err != nil {
		o.Log.Printf("Launcher: Failed to write installer script: %v", err)
		o.cleanupManifest(manifest)
		return UserApproved
	}

	o.Log.Printf("Launcher: Running installer script %s...", script.Path)
	if err := o.Terminal.RunVisible(ctx, script.Path); err != nil {
		o.Log.Printf("Launcher: Installer session: %v", err)
	} else {
		o.Log.Print("Launcher: Installer session completed.")
	}

	if err := script.Remove(); err != nil {
		o.Log.Printf("Launcher: Failed to remove installer script: %v", err)
	}
	o.cleanupManifest(manifest)

	return UserApproved
}

func (o *Orchestrator) cleanupManifest(m Manifest) {
	if m.FilteredPath == "" {
		return
	}
	if err := m.Remove(); err != nil {
		o.Log.Printf("Launcher: Failed to remove filtered manifest: %v", err)
	}
}
