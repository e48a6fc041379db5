package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/TWRT/taskdeck/internal/realtime"
)

var watchedEvents = []string{"task_created", "task_updated", "task_deleted"}

type taskEvent struct {
	ProjectId string `json:"project_id"`
	TaskId    string `json:"task_id"`
	Name      string `json:"name"`
}

// watch streams task events for one project until interrupted or the
// server hangs up.
func (a *App) watch(args []string) error {
	if err := wantArgs(args, 1, "watch <project-id>"); err != nil {
		return err
	}
	projectId := args[0]

	if a.WSURL == "" {
		return fmt.Errorf("TASKDECK_WS_URL is required for watch")
	}

	conn, err := realtime.Dial(a.WSURL, a.bearerToken())
	if err != nil {
		return err
	}

	for _, event := range watchedEvents {
		conn.Subscribe(event, func(payload json.RawMessage) {
			var ev taskEvent
			if err := json.Unmarshal(payload, &ev); err != nil {
				return
			}
			if ev.ProjectId != projectId {
				return
			}
			fmt.Fprintf(a.Out, "%-12s %s %s\n", event, ev.TaskId, ev.Name)
		})
	}

	if err := conn.Send("subscribe", map[string]string{"project_id": projectId}); err != nil {
		conn.Close()
		return err
	}

	fmt.Fprintf(a.Out, "Watching project %s (Ctrl-C to stop)\n", projectId)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	select {
	case <-interrupt:
	case <-conn.Done():
		fmt.Fprintln(a.Out, "Connection closed by server.")
	}
	return conn.Close()
}
