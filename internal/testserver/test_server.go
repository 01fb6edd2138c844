package testserver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mfeldt/etude-mcp/internal/domain/plan"
	"github.com/mfeldt/etude-mcp/internal/mcp"
	"github.com/mfeldt/etude-mcp/internal/sqlite"
	"github.com/mfeldt/etude-mcp/internal/transport"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

type TestServer struct {
	Server   *httptest.Server
	DB       *sqlite.DB
	Registry *plan.Registry
	Token    string
	Profile  string

	keys *sqlite.KeyRepository
}

func New(t *testing.T, token, profile string) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	snapshotRepo := sqlite.NewSnapshotRepository(db)
	keyRepo := sqlite.NewKeyRepository(db)

	registry := plan.NewRegistry(snapshotRepo, nil)

	mcpServer := mcp.NewServer(mcp.Config{
		Plans:         registry,
		Resolver:      transport.NewResolver(keyRepo),
		AuthEnabled:   true,
		TransportMode: "http",
	})

	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{
			Stateless:      false,
			SessionTimeout: time.Minute,
		},
	)

	server := httptest.NewServer(transport.NewRouter(mcpHandler))

	ts := &TestServer{
		Server:   server,
		DB:       db,
		Registry: registry,
		Token:    token,
		Profile:  profile,
		keys:     keyRepo,
	}

	require.NoError(t, ts.AddAPIKey(token, profile))

	t.Cleanup(func() {
		server.Close()
		_ = registry.Close()
		_ = db.Close()
	})

	return ts
}

// AddAPIKey registers a token for a profile.
func (ts *TestServer) AddAPIKey(token, profile string) error {
	return ts.keys.Create(context.Background(), transport.HashToken(token), profile, "test key")
}

// Connect returns an MCP client session speaking streamable HTTP with the
// given bearer token.
func (ts *TestServer) Connect(t *testing.T, token string) *sdkmcp.ClientSession {
	t.Helper()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(context.Background(), &sdkmcp.StreamableClientTransport{
		Endpoint: ts.Server.URL + "/mcp",
		HTTPClient: &http.Client{
			Transport: &bearerTransport{token: token},
		},
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

type bearerTransport struct {
	token string
}

func (bt *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+bt.token)
	return http.DefaultTransport.RoundTrip(clone)
}
