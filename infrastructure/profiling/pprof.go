// Package profiling exposes net/http/pprof on a loopback listener.
package profiling

import (
	"errors"
	"net"
	"net/http"
	"net/http/pprof"
	"os"
	"time"

	"github.com/growlocal360/maxx-energy/infrastructure/logger"
)

const defaultPort = "6060"

// Enabled reports whether ENABLE_PROFILING=true.
func Enabled() bool {
	return os.Getenv("ENABLE_PROFILING") == "true"
}

// Mux returns a mux with the pprof handlers registered under /debug/pprof/.
func Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return mux
}

// StartPprofServer serves pprof on localhost:$PPROF_PORT (default 6060) when
// profiling is enabled. The listener only binds to loopback.
func StartPprofServer(log logger.Logger) {
	if !Enabled() {
		return
	}

	port := os.Getenv("PPROF_PORT")
	if port == "" {
		port = defaultPort
	}
	addr := net.JoinHostPort("localhost", port)

	srv := &http.Server{
		Addr:              addr,
		Handler:           Mux(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Starting pprof server", logger.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("pprof server error", logger.Error(err))
		}
	}()
}
