package static

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed assets/styles.css
var assets embed.FS

func Handler() http.Handler {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
