package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/TWRT/taskdeck/internal/models"
	"github.com/TWRT/taskdeck/internal/service"
)

func (a *App) listAttachments(args []string) error {
	if err := wantArgs(args, 1, "attachments <task-id>"); err != nil {
		return err
	}

	attachments, err := a.Attachments.List(args[0])
	if err != nil {
		return err
	}
	renderAttachments(a.Out, attachments)
	return nil
}

func (a *App) upload(args []string) error {
	if err := wantArgs(args, 2, "upload <task-id> <file>"); err != nil {
		return err
	}

	attachment, err := a.Attachments.UploadFile(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "Uploaded %s (%s)\n", attachment.FileName, attachment.Id)
	return nil
}

func (a *App) attachLink(args []string) error {
	if err := wantArgs(args, 3, "attach-link <task-id> <name> <url>"); err != nil {
		return err
	}

	attachment, err := a.Attachments.AttachLink(args[0], args[1], args[2])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "Attached link %s (%s)\n", attachment.FileName, attachment.Id)
	return nil
}

// deleteAttachment asks before deleting; after a successful delete the
// list is refetched rather than trimmed in place, so what gets printed
// is the server's view.
func (a *App) deleteAttachment(args []string) error {
	fs := flag.NewFlagSet("attachment-delete", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	yes := fs.Bool("y", false, "skip the confirmation prompt")
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	if err := wantArgs(fs.Args(), 2, "attachment-delete <task-id> <attachment-id> [-y]"); err != nil {
		return err
	}
	taskId, attachmentId := fs.Arg(0), fs.Arg(1)

	if !*yes && !a.confirm(fmt.Sprintf("Delete attachment %s?", attachmentId)) {
		fmt.Fprintln(a.Out, "Cancelled.")
		return nil
	}

	if err := a.Attachments.Delete(attachmentId); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "Attachment deleted.")

	attachments, err := a.Attachments.List(taskId)
	if err != nil {
		return err
	}
	renderAttachments(a.Out, attachments)
	return nil
}

func (a *App) confirm(prompt string) bool {
	fmt.Fprintf(a.Out, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(a.In).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func (a *App) findAttachment(taskId, attachmentId string) (*models.Attachment, error) {
	attachments, err := a.Attachments.List(taskId)
	if err != nil {
		return nil, err
	}
	for _, attachment := range attachments {
		if attachment.Id == attachmentId {
			return &attachment, nil
		}
	}
	return nil, fmt.Errorf("attachment %s not found on task %s", attachmentId, taskId)
}

func (a *App) previewAttachment(args []string) error {
	if err := wantArgs(args, 2, "preview <task-id> <attachment-id>"); err != nil {
		return err
	}

	attachment, err := a.findAttachment(args[0], args[1])
	if err != nil {
		return err
	}

	if attachment.IsLink() {
		fmt.Fprintf(a.Out, "Link attachment: %s\n", attachment.URL)
		return nil
	}

	url, err := a.Attachments.PreviewURL(*attachment)
	if errors.Is(err, service.ErrPreviewUnavailable) {
		fmt.Fprintf(a.Out, "Preview unavailable for %s (%s).\n", attachment.FileName, attachment.FileType)
		fmt.Fprintf(a.Out, "Run: taskdeck download %s\n", attachment.Id)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "%s\n", url)
	fmt.Fprintln(a.Out, "The URL is signed and expires shortly; request a new one when it does.")
	return nil
}

func (a *App) downloadAttachment(args []string) error {
	fs := flag.NewFlagSet("download", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	dest := fs.String("o", "", "destination file (default: attachment id)")
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	if err := wantArgs(fs.Args(), 1, "download <attachment-id> [-o file]"); err != nil {
		return err
	}
	attachmentId := fs.Arg(0)

	path := *dest
	if path == "" {
		path = attachmentId
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	n, err := a.Attachments.Download(attachmentId, f)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "Wrote %s (%d bytes)\n", path, n)
	return nil
}

func (a *App) recentUploads(args []string) error {
	if err := wantArgs(args, 1, "uploads <task-id>"); err != nil {
		return err
	}

	records, err := a.Attachments.RecentUploads(args[0])
	if err != nil {
		return err
	}
	renderUploads(a.Out, records)
	return nil
}
