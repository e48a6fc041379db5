package backend

import (
	"net/http"

	"github.com/TWRT/taskdeck/internal/models"
)

func (c *Client) GetProjects() ([]models.Project, error) {
	var resp projectsResponse
	if err := c.do(http.MethodGet, "/projects", nil, &resp); err != nil {
		return nil, err
	}

	projects := make([]models.Project, len(resp.Projects))
	for i, p := range resp.Projects {
		projects[i] = models.Project{Id: p.Id, Name: p.Name}
	}
	return projects, nil
}
