package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/TWRT/taskdeck/internal/models"
	"github.com/TWRT/taskdeck/internal/pagination"
	"github.com/TWRT/taskdeck/internal/repository"
	"github.com/TWRT/taskdeck/internal/service"
	"github.com/dustin/go-humanize"
)

func renderProjects(out io.Writer, projects []models.Project) {
	if len(projects) == 0 {
		fmt.Fprintln(out, "No projects.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	for _, p := range projects {
		fmt.Fprintf(w, "%s\t%s\n", p.Id, p.Name)
	}
	w.Flush()
}

func assigneeNames(assignees []models.Assignee) string {
	names := make([]string, 0, len(assignees))
	for _, a := range assignees {
		name := a.Name
		if name == "" {
			name = a.Email
		}
		if name == "" {
			name = a.ID
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

func renderTaskPage(out io.Writer, page *service.TaskPage) {
	if len(page.Tasks) == 0 {
		fmt.Fprintln(out, "No tasks.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tPRIORITY\tDUE\tASSIGNEES")
	for _, t := range page.Tasks {
		due := "-"
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			t.Id, t.Name, t.Status, t.Priority, due, assigneeNames(t.Assignees))
	}
	w.Flush()

	fmt.Fprintf(out, "\n%d tasks, page %s\n", page.Total, FormatWindow(page.Window, page.Page))
}

// FormatWindow renders a page window like "1 ... 3 4 [5] 6 7 ... 20".
func FormatWindow(window []pagination.Entry, current int) string {
	parts := make([]string, 0, len(window))
	for _, entry := range window {
		switch {
		case entry.Ellipsis:
			parts = append(parts, "...")
		case entry.Page == current:
			parts = append(parts, fmt.Sprintf("[%d]", entry.Page))
		default:
			parts = append(parts, fmt.Sprintf("%d", entry.Page))
		}
	}
	return strings.Join(parts, " ")
}

func attachmentSize(a models.Attachment) string {
	if a.IsLink() || a.FileSize == nil {
		return "-"
	}
	return humanize.IBytes(uint64(*a.FileSize))
}

func renderAttachments(out io.Writer, attachments []models.Attachment) {
	if len(attachments) == 0 {
		fmt.Fprintln(out, "No attachments.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tSIZE\tUPLOADED")
	for _, a := range attachments {
		uploaded := "-"
		if !a.UploadedAt.IsZero() {
			uploaded = humanize.Time(a.UploadedAt)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			a.Id, a.FileName, a.FileType, attachmentSize(a), uploaded)
	}
	w.Flush()
}

func renderUploads(out io.Writer, records []repository.UploadRecord) {
	if len(records) == 0 {
		fmt.Fprintln(out, "No uploads from this machine.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tSIZE\tOBJECT\tWHEN")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			r.FileName, humanize.IBytes(uint64(r.FileSize)), r.FilePath, humanize.Time(r.CreatedAt))
	}
	w.Flush()
}
