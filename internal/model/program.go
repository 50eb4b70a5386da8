package model

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ProgramKind identifies which template family produced a program.
type ProgramKind string

const (
	ProgramFrame ProgramKind = "frame"
	ProgramLock  ProgramKind = "lock"
	ProgramHinge ProgramKind = "hinge"
)

// SyncStatus tracks whether a generated program still matches the
// project inputs it was generated from.
type SyncStatus int

const (
	NotGenerated SyncStatus = iota
	InSync
	Stale
)

// String returns a human-readable status name.
func (s SyncStatus) String() string {
	switch s {
	case NotGenerated:
		return "not generated"
	case InSync:
		return "in sync"
	case Stale:
		return "stale"
	default:
		return "unknown"
	}
}

// GeneratedProgram is one rendered G-code program together with the
// fingerprint of the inputs that produced it.
type GeneratedProgram struct {
	Kind        ProgramKind `json:"kind"`
	Side        Side        `json:"side"`
	FileName    string      `json:"file_name"`
	Code        string      `json:"code"`
	Fingerprint string      `json:"fingerprint"`
	GeneratedAt string      `json:"generated_at"`
}

// NewGeneratedProgram wraps rendered code with its metadata.
func NewGeneratedProgram(kind ProgramKind, side Side, fileName, code, fingerprint string) GeneratedProgram {
	return GeneratedProgram{
		Kind:        kind,
		Side:        side,
		FileName:    fileName,
		Code:        code,
		Fingerprint: fingerprint,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// Status compares the stored fingerprint against the fingerprint of the
// current inputs.
func (g GeneratedProgram) Status(current string) SyncStatus {
	if g.Fingerprint == "" {
		return NotGenerated
	}
	if g.Fingerprint == current {
		return InSync
	}
	return Stale
}

// GenerationFingerprint hashes the inputs that feed a generation run.
// Any change to the parts produces a different fingerprint, so programs
// can be flagged stale without re-rendering them.
func GenerationFingerprint(parts ...interface{}) string {
	h := sha256.New()
	for _, p := range parts {
		b, err := json.Marshal(p)
		if err != nil {
			fmt.Fprintf(h, "%v", p)
			continue
		}
		h.Write(b)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ShortFingerprint truncates a fingerprint for listings.
func ShortFingerprint(fp string) string {
	if len(fp) > 12 {
		return fp[:12]
	}
	return fp
}

// ProgramFileName builds the output file name for a program, such as
// "entrance_right_frame.nc".
func ProgramFileName(projectName string, side Side, kind ProgramKind) string {
	base := sanitizeFileName(projectName)
	if base == "" {
		base = "frame"
	}
	return fmt.Sprintf("%s_%s_%s.nc", base, side, kind)
}

// sanitizeFileName lowers the name and replaces anything outside
// [a-z0-9-] with underscores, collapsing runs.
func sanitizeFileName(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteRune('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}
