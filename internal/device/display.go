// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package device

import (
	"fmt"
	"io"

	"github.com/MKhiriev/go-gate-keeper/internal/service"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// Display renders scan verdicts and device state on the operator terminal.
type Display struct {
	out io.Writer
}

// NewDisplay writes to out, typically os.Stdout.
func NewDisplay(out io.Writer) *Display {
	return &Display{out: out}
}

// Ready prints the boot banner with the restored authorization state.
func (d *Display) Ready(diag service.Diagnostics) {
	fmt.Fprintln(d.out, infoStyle.Render(fmt.Sprintf(
		"ready: %d cards, %d allow / %d deny learned",
		diag.CardCount, diag.AllowedFingerprints, diag.DeniedFingerprints,
	)))
}

// Verdict prints the access decision for one scan, with the server state
// and enroll indicator alongside.
func (d *Display) Verdict(uid string, authorized, online bool, status models.ServerStatus) {
	verdict := deniedStyle.Render("DENIED ")
	if authorized {
		verdict = grantedStyle.Render("GRANTED")
	}

	line := fmt.Sprintf("%s  %s", verdict, uid)
	if !online {
		line += "  " + offlineStyle.Render("[offline]")
	}
	if status.EnrollMode.Armed() {
		line += "  " + enrollStyle.Render("[enroll: "+string(status.EnrollMode)+"]")
	}
	fmt.Fprintln(d.out, line)
}

// Enrolled prints the one-shot enrollment confirmation.
func (d *Display) Enrolled(uid string) {
	fmt.Fprintln(d.out, enrollStyle.Render("ENROLLED")+"  "+uid)
}
