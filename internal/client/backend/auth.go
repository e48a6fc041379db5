package backend

import (
	"net/http"

	"github.com/TWRT/taskdeck/internal/models"
)

// Login exchanges credentials for a bearer token. No Authorization
// header is sent; this is the call that obtains one.
func (c *Client) Login(email, password string) (string, *models.User, error) {
	req, err := c.newRequest(http.MethodPost, "/auth/login", loginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return "", nil, err
	}

	var resp authResponse
	if err := c.send(req, &resp); err != nil {
		return "", nil, err
	}

	return resp.Token, &models.User{
		Id:    resp.User.Id,
		Name:  resp.User.Name,
		Email: resp.User.Email,
	}, nil
}

func (c *Client) Register(name, email, password string) (string, *models.User, error) {
	req, err := c.newRequest(http.MethodPost, "/auth/register", registerRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return "", nil, err
	}

	var resp authResponse
	if err := c.send(req, &resp); err != nil {
		return "", nil, err
	}

	return resp.Token, &models.User{
		Id:    resp.User.Id,
		Name:  resp.User.Name,
		Email: resp.User.Email,
	}, nil
}
