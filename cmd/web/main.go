package main

import (
	_ "embed"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/tomz197/hive/internal/config"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

func main() {
	logger := config.NewLogger(os.Stderr, "hive-web")

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	sshPort := config.GetEnv("SSH_DISPLAY_PORT", "2222")

	addr := fmt.Sprintf("%s:%s", host, port)
	logger.Info("starting web server", "addr", "http://"+addr, "ssh_host", sshHost)
	if err := http.ListenAndServe(addr, newHandler(htmlPage, sshHost, sshPort)); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// newHandler serves the landing page with the SSH connection details filled in.
func newHandler(page, sshHost, sshPort string) http.Handler {
	page = strings.NewReplacer("{{.SSHHost}}", sshHost, "{{.SSHPort}}", sshPort).Replace(page)
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})
	return mux
}
