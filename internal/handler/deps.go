package handler

import (
	"strings"
	"sync"

	"tmsdash/internal/auth"
	"tmsdash/internal/config"
	"tmsdash/internal/resource"
	"tmsdash/internal/session"
	"tmsdash/internal/upstream"

	"github.com/gin-gonic/gin"
)

// Deps is the process-wide wiring handlers share. Session state lives in
// the request cookie, so everything token-scoped (upstream client, auth
// service, resource registry) is built per request via Scope.
type Deps struct {
	Cfg    config.Config
	Caches *resource.CachePool
}

func NewDeps(cfg config.Config) *Deps {
	return &Deps{Cfg: cfg, Caches: resource.NewCachePool()}
}

// Scope is the token-scoped view of the core for one request
type Scope struct {
	Store     session.Store
	Auth      *auth.Service
	Resources *resource.Registry
	Notify    *captureNotifier
}

// Scope wires the core for this request's session
func (d *Deps) Scope(c *gin.Context) *Scope {
	store := session.NewCookieStore(c, d.Cfg.ReleaseMode)
	api := upstream.New(d.upstreamBase(), store)
	token, _ := store.Token()
	notify := &captureNotifier{}
	return &Scope{
		Store:     store,
		Auth:      auth.NewService(api, store),
		Resources: resource.NewRegistry(api, d.Caches.For(token), notify),
		Notify:    notify,
	}
}

// upstreamBase resolves the outbound base URL. The configured base path is
// the edge-proxy prefix ("/api" by default); when it is not already a full
// URL it is rooted at the upstream origin, which is what the proxy rewrite
// would do in front of a browser.
func (d *Deps) upstreamBase() string {
	base := d.Cfg.APIBasePath
	if strings.HasPrefix(base, "http://") || strings.HasPrefix(base, "https://") {
		return base
	}
	return strings.TrimRight(d.Cfg.UpstreamOrigin, "/") + base
}

// captureNotifier records mutation outcome messages so the handler can echo
// them in the response envelope (the UI's toast text)
type captureNotifier struct {
	mu      sync.Mutex
	lastMsg string
}

func (n *captureNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.lastMsg = message
}

func (n *captureNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.lastMsg = message
}

// Last returns the most recent notification message
func (n *captureNotifier) Last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.lastMsg
}
