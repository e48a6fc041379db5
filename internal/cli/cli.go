package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/TWRT/taskdeck/internal/client"
	"github.com/TWRT/taskdeck/internal/repository"
	"github.com/TWRT/taskdeck/internal/service"
)

// App wires the command handlers to the services and the stored
// session. Commands read from In for prompts and write results to Out.
type App struct {
	Auth        client.AuthAPI
	Tasks       *service.TaskService
	Attachments *service.AttachmentService
	Sessions    *repository.SessionRepository

	// Token overrides the stored session when set (TASKDECK_TOKEN).
	Token string
	// WSURL is the realtime origin; empty disables the watch command.
	WSURL string

	In  io.Reader
	Out io.Writer
}

func (a *App) bearerToken() string {
	if a.Token != "" {
		return a.Token
	}
	session, err := a.Sessions.Get()
	if err != nil {
		return ""
	}
	return session.Token
}

// Run dispatches one subcommand. Errors bubble up to main for a
// single exit path.
func Run(a *App, args []string) error {
	if len(args) == 0 {
		usage(a.Out)
		return nil
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return a.login(rest)
	case "register":
		return a.register(rest)
	case "logout":
		return a.logout()
	case "whoami":
		return a.whoami()
	case "projects":
		return a.listProjects()
	case "tasks":
		return a.listTasks(rest)
	case "task-create":
		return a.createTask(rest)
	case "task-update":
		return a.updateTask(rest)
	case "task-delete":
		return a.deleteTask(rest)
	case "attachments":
		return a.listAttachments(rest)
	case "upload":
		return a.upload(rest)
	case "attach-link":
		return a.attachLink(rest)
	case "attachment-delete":
		return a.deleteAttachment(rest)
	case "preview":
		return a.previewAttachment(rest)
	case "download":
		return a.downloadAttachment(rest)
	case "uploads":
		return a.recentUploads(rest)
	case "watch":
		return a.watch(rest)
	case "help", "-h", "--help":
		usage(a.Out)
		return nil
	}

	usage(a.Out)
	return fmt.Errorf("unknown command %q", cmd)
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "Usage: taskdeck <command> [arguments]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "   login <email> <password>                       Log in and store the session")
	fmt.Fprintln(out, "   register <name> <email> <password>             Create an account and log in")
	fmt.Fprintln(out, "   logout                                         Clear the stored session")
	fmt.Fprintln(out, "   whoami                                         Show the logged-in user")
	fmt.Fprintln(out, "   projects                                       List projects")
	fmt.Fprintln(out, "   tasks <project-id> [-page N] [-size N]         List a project's tasks")
	fmt.Fprintln(out, "   task-create <project-id> <name> [flags]        Create a task")
	fmt.Fprintln(out, "   task-update <task-id> [flags]                  Update a task")
	fmt.Fprintln(out, "   task-delete <task-id>                          Delete a task")
	fmt.Fprintln(out, "   attachments <task-id>                          List a task's attachments")
	fmt.Fprintln(out, "   upload <task-id> <file>                        Upload a file attachment")
	fmt.Fprintln(out, "   attach-link <task-id> <name> <url>             Attach an external link")
	fmt.Fprintln(out, "   attachment-delete <task-id> <attachment-id>    Delete an attachment (asks first)")
	fmt.Fprintln(out, "   preview <task-id> <attachment-id>              Resolve a preview URL")
	fmt.Fprintln(out, "   download <attachment-id> [-o file]             Download an attachment")
	fmt.Fprintln(out, "   uploads <task-id>                              Show uploads made from this machine")
	fmt.Fprintln(out, "   watch <project-id>                             Stream task events")
}

func wantArgs(args []string, n int, usage string) error {
	if len(args) < n {
		return errors.New("usage: taskdeck " + usage)
	}
	return nil
}
