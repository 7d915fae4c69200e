package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/founder-directory/models"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	detailStyle = lipgloss.NewStyle().Faint(true)
)

type terminalNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

// NewTerminalNotifier returns a [Notifier] printing one styled line per
// changed pass to out. A nil out means os.Stderr.
func NewTerminalNotifier(out io.Writer) Notifier {
	if out == nil {
		out = os.Stderr
	}
	return &terminalNotifier{out: out}
}

func (n *terminalNotifier) Notify(_ context.Context, report models.SyncReport) {
	line := titleStyle.Render("Founder directory updated") + " " +
		detailStyle.Render(summary(report))

	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintln(n.out, line)
}

func summary(report models.SyncReport) string {
	s := fmt.Sprintf("%d pulled, %d sent, version %d", report.Pulled,
		report.Deleted+report.Created+report.Updated, report.ServerMax)
	if report.Failed > 0 {
		s += fmt.Sprintf(", %d pending", report.Failed)
	}
	return s
}
