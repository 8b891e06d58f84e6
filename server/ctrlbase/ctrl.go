package ctrlbase

import (
	"path"

	"github.com/tunaapi/tuna/catalog"
	"github.com/tunaapi/tuna/db"
)

type Controller struct {
	DB          *db.DB
	Catalog     *catalog.Catalog
	ProxyPrefix string
}

func New(dbc *db.DB, proxyPrefix string) *Controller {
	return &Controller{
		DB:          dbc,
		Catalog:     catalog.New(dbc),
		ProxyPrefix: proxyPrefix,
	}
}

// Path returns a URL path with the proxy prefix included
func (c *Controller) Path(rel string) string {
	return path.Join("/", c.ProxyPrefix, rel)
}
