package backend

import "context"

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (c *Client) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	body := map[string]string{"username": username, "password": password}
	var out LoginResponse
	err := c.do(ctx, "POST", "/admin/login", nil, body, &out)
	return out, err
}

// Register returns the backend's free-text message; the caller decides
// success from its content (the backend does not signal it structurally).
func (c *Client) Register(ctx context.Context, username, password, role string) (string, error) {
	body := map[string]string{"username": username, "password": password, "role": role}
	var out struct {
		Message string `json:"message"`
	}
	err := c.do(ctx, "POST", "/admin/register", nil, body, &out)
	return out.Message, err
}

// Logout invalidates the bearer token server-side. Best effort: callers
// clear local state regardless of the result.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, "DELETE", "/admin/logout", nil, nil, nil)
}
