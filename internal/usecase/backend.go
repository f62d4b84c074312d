package usecase

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hospital-dashboard/config"
	"hospital-dashboard/internal/infrastructure/httpclient"
	"hospital-dashboard/internal/infrastructure/simulation"
)

// dateLayout is the sortable form every appointment date is stored in.
const dateLayout = "2006-01-02"

// Backend is what every usecase consults before serving a call: in live mode
// the call goes to Client, in mock mode it waits on Simulator and then works
// against the in-memory repositories.
type Backend struct {
	Mode      config.BackendMode
	Client    *httpclient.Client
	Simulator *simulation.Simulator
	Clock     func() time.Time
}

func (b *Backend) live() bool {
	return b.Mode.IsLive()
}

func (b *Backend) simulate(ctx context.Context, op string) error {
	if b.Simulator == nil {
		return nil
	}
	return b.Simulator.Simulate(ctx, op)
}

func (b *Backend) now() time.Time {
	if b.Clock == nil {
		return time.Now()
	}
	return b.Clock()
}

// today is the current date in YYYY-MM-DD form.
func (b *Backend) today() string {
	return b.now().Format(dateLayout)
}

// resourcePath escapes each id as a single segment. Dot-only ids are
// percent-encoded so they never act as "." or ".." path segments.
func resourcePath(parts ...string) string {
	p := ""
	for _, part := range parts {
		if strings.Trim(part, ".") == "" && part != "" {
			p += "/" + strings.Repeat("%2E", len(part))
			continue
		}
		p += "/" + url.PathEscape(part)
	}
	return p
}

type queryBuilder url.Values

func (q queryBuilder) str(key, v string) queryBuilder {
	if v != "" {
		url.Values(q).Set(key, v)
	}
	return q
}

func (q queryBuilder) num(key string, v int) queryBuilder {
	if v > 0 {
		url.Values(q).Set(key, strconv.Itoa(v))
	}
	return q
}

func (q queryBuilder) values() url.Values {
	return url.Values(q)
}

func newQuery() queryBuilder {
	return queryBuilder(url.Values{})
}
