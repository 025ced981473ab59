package rpc

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/rpc"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/powerman/rpc-codec/jsonrpc2"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/net/netutil"

	"github.com/thetatoken/checkpoints/checkpoint"
	"github.com/thetatoken/checkpoints/common"
	"github.com/thetatoken/checkpoints/common/util"
	"github.com/thetatoken/checkpoints/core"
)

var logger *log.Entry = util.GetLoggerForModule("rpc")

// ChainIndex is the chain index the RPC service reports on.
type ChainIndex interface {
	core.BlockIndex
	Tip() *core.BlockIndexNode
}

// CheckpointRPCService implements the RPC methods.
type CheckpointRPCService struct {
	checker *checkpoint.Checker
	index   ChainIndex
	now     func() time.Time
}

// CheckpointRPCServer is an instance of RPC service.
type CheckpointRPCServer struct {
	*CheckpointRPCService

	server   *http.Server
	handler  *rpc.Server
	router   *mux.Router
	listener net.Listener

	// Life cycle
	wg      *sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	stopped bool
}

// NewCheckpointRPCServer creates a new instance of CheckpointRPCServer.
func NewCheckpointRPCServer(checker *checkpoint.Checker, index ChainIndex) *CheckpointRPCServer {
	t := &CheckpointRPCServer{
		CheckpointRPCService: &CheckpointRPCService{
			checker: checker,
			index:   index,
			now:     time.Now,
		},
		wg: &sync.WaitGroup{},
	}

	s := rpc.NewServer()
	if err := s.RegisterName("checkpoint", t.CheckpointRPCService); err != nil {
		logger.Panic(err)
	}
	t.handler = s

	timeout := viper.GetDuration(common.CfgRPCTimeoutSecs) * time.Second
	t.router = mux.NewRouter()
	t.router.Handle("/", &defaultHTTPHandler{})
	t.router.Handle("/rpc", corsMiddleware(http.TimeoutHandler(jsonrpc2.HTTPHandler(s), timeout, ""))).
		Methods(http.MethodPost, http.MethodOptions)

	t.server = &http.Server{
		Handler: t.router,
	}

	return t
}

// Start creates the main goroutine.
func (t *CheckpointRPCServer) Start(ctx context.Context) {
	c, cancel := context.WithCancel(ctx)
	t.ctx = c
	t.cancel = cancel

	t.wg.Add(1)
	go t.mainLoop()
}

func (t *CheckpointRPCServer) mainLoop() {
	defer t.wg.Done()

	go t.serve()

	<-t.ctx.Done()
	t.stopped = true
	t.server.Shutdown(context.Background())
}

func (t *CheckpointRPCServer) serve() {
	address := viper.GetString(common.CfgRPCAddress)
	port := viper.GetString(common.CfgRPCPort)
	l, err := net.Listen("tcp", net.JoinHostPort(address, port))
	if err != nil {
		logger.WithFields(log.Fields{"error": err}).Fatal("Failed to create listener")
	}
	logger.WithFields(log.Fields{"address": address, "port": port}).Info("RPC server started")
	defer l.Close()

	ll := netutil.LimitListener(l, viper.GetInt(common.CfgRPCMaxConnections))
	t.listener = ll

	logger.Info(t.server.Serve(ll))
}

func corsMiddleware(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		handler.ServeHTTP(w, r)
	})
}

// Stop notifies all goroutines to stop without blocking.
func (t *CheckpointRPCServer) Stop() {
	t.cancel()
}

// Wait blocks until all goroutines stop.
func (t *CheckpointRPCServer) Wait() {
	t.wg.Wait()
}

type defaultHTTPHandler struct {
}

func (dh *defaultHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "Theta checkpoint service is up and running!")
}
