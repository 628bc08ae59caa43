package cli

import (
	"io"
	"os"

	"github.com/julianstephens/tripweaver/internal/client"
	"github.com/julianstephens/tripweaver/internal/config"
	"github.com/julianstephens/tripweaver/internal/session"
)

// Context is handed to every command's Run method.
type Context struct {
	Config config.Config
	Client *client.Client
	// Out receives command output. Nil means stdout.
	Out io.Writer
}

// NewController returns a fresh session controller backed by the planning client.
func (c *Context) NewController() *session.Controller {
	return session.New(c.Client, session.WithTimeout(c.Config.Timeout))
}

func (c *Context) Stdout() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}
