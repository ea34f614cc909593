package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/danielgtaylor/huma/v2"

	"github.com/oaiiae/alerta/handlers"
	"github.com/oaiiae/alerta/router"
)

type ServerOptions struct {
	Host              string        `short:"H" doc:"host to listen on"                    default:""`
	Port              string        `short:"p" doc:"port to listen on"                    default:"8888"`
	ReadHeaderTimeout time.Duration `          doc:"time allowed to read request headers" default:"15s"`
}

func NewServer(options *ServerOptions, handler http.Handler, logger *slog.Logger) *http.Server {
	return &http.Server{
		Addr:              options.Host + ":" + options.Port,
		ReadHeaderTimeout: options.ReadHeaderTimeout,
		Handler:           handler,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

type RouterOptions struct {
	EndpointsPrefix string `doc:"mount endpoints at a prefix" default:"/api"`
}

func NewRouter(
	options *RouterOptions,
	domain *Domain,
	title string,
	version string,
	revision string,
	created string,
	logger *slog.Logger,
) (http.Handler, huma.API) {
	buildinfoMetric := joinQuote("build_info{goversion=", runtime.Version(),
		",title=", title,
		",version=", version,
		",revision=", revision,
		",created=", created,
		"} 1\n")
	metriks := metrics.NewSet()
	metriks.NewGauge("alerta_contacts", func() float64 {
		n, _ := domain.Contacts.Count(context.Background())
		return float64(n)
	})
	metriks.NewGauge("alerta_edit_sessions", func() float64 {
		return float64(domain.Sessions.Len())
	})
	errorHandler := ctxlog{}.errorHandler(logger)

	return router.New(title, version,
		func(_ http.ResponseWriter, _ *http.Request) {},
		func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, buildinfoMetric)
			metriks.WritePrometheus(w)
			metrics.WriteProcessMetrics(w)
		},
		router.OptUseMiddleware(
			ctxlog{}.loggerMiddleware(logger),
			meterRequests(metriks),
			ctxlog{}.recoverMiddleware(logger),
		),
		router.OptGroup(options.EndpointsPrefix,
			router.OptGroup("/profile", router.OptAutoRegister(&handlers.Profile{
				Name:     domain.Seed.Profile.Name,
				Status:   domain.Seed.Profile.Status,
				DeviceID: domain.Seed.DeviceID,
				Variant:  domain.Variant,
				Contacts: domain.Contacts,

				ErrorHandler: errorHandler,
			})),
			router.OptGroup("/contacts", router.OptAutoRegister(&handlers.Contacts{
				Store:        domain.Contacts,
				ErrorHandler: errorHandler,
			})),
			router.OptGroup("/number", router.OptAutoRegister(&handlers.Number{
				Store:        domain.Number,
				ErrorHandler: errorHandler,
			})),
			router.OptGroup("/sessions", router.OptAutoRegister(&handlers.Sessions{
				Sessions:       domain.Sessions,
				DefaultVariant: domain.Variant,
				ContactsLimit:  domain.Contacts.Limit(),
				ErrorHandler:   errorHandler,
			})),
			router.OptGroup("/settings", router.OptAutoRegister(&handlers.Settings{})),
		),
	)
}

func meterRequests(set *metrics.Set) func(huma.Context, func(huma.Context)) {
	type ref struct {
		*metrics.Counter
		*metrics.Histogram
	}

	refs := sync.Map{}
	refsMu := sync.Mutex{}

	return func(ctx huma.Context, next func(huma.Context)) {
		op, start := ctx.Operation(), time.Now()
		next(ctx)

		uid := op.OperationID + http.StatusText(ctx.Status())
		val, ok := refs.Load(uid)
		if !ok {
			refsMu.Lock()
			val, ok = refs.Load(uid)
			if !ok {
				labels := joinQuote("{method=", op.Method, ",path=", op.Path, ",status=", strconv.Itoa(ctx.Status()), "}") //nolint: golines
				val = ref{
					set.NewCounter("http_requests_total" + labels),
					set.NewHistogram("http_request_duration_seconds" + labels),
				}
				refs.Store(uid, val)
			}
			refsMu.Unlock()
		}
		valref := val.(ref) //nolint: errcheck // always true
		valref.Counter.Inc()
		valref.Histogram.UpdateDuration(start)
	}
}

// joinQuote is [strings.Join] with " as separator.
func joinQuote(elems ...string) string { return strings.Join(elems, `"`) }

// joinSpace is [strings.Join] with space as separator.
func joinSpace(elems ...string) string { return strings.Join(elems, ` `) }
