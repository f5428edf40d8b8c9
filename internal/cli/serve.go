package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	floorerrors "github.com/shopsim/floornav/pkg/errors"
	"github.com/shopsim/floornav/pkg/plan"
	"github.com/shopsim/floornav/pkg/render/dot"
	"github.com/shopsim/floornav/pkg/render/floorplan"
	"github.com/shopsim/floornav/pkg/store"
)

const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command for the plan viewer.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		mongoURI string
		mongoDB  string
	)

	cmd := &cobra.Command{
		Use:   "serve [plan.json]",
		Short: "Serve a plan over HTTP for inspection",
		Long: `Serve a plan over HTTP for inspection.

The viewer exposes the loaded plan as JSON plus rendered views:

  GET /plan           plan document as JSON
  GET /floorplan.svg  to-scale drawing of the store
  GET /graph.svg      zone adjacency graph diagram

With --mongo the loaded plan is archived on startup and previously archived
plans become browsable:

  GET /plans                       archived plan IDs
  GET /plans/{id}                  archived plan as JSON
  GET /plans/{id}/floorplan.svg    archived plan drawing
  GET /plans/{id}/graph.svg        archived plan graph diagram`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], addr, mongoURI, mongoDB)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&mongoURI, "mongo", "", "mongodb URI for the plan archive")
	cmd.Flags().StringVar(&mongoDB, "db", "floornav", "mongodb database name")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, input, addr, mongoURI, mongoDB string) error {
	doc, err := plan.ReadPlanFile(input)
	if err != nil {
		return fmt.Errorf("load plan %s: %w", input, err)
	}

	var archive *store.Mongo
	if mongoURI != "" {
		archive, err = store.NewMongo(ctx, mongoURI, mongoDB)
		if err != nil {
			return fmt.Errorf("connect archive: %w", err)
		}
		defer archive.Close(context.Background())

		if err := archive.Save(ctx, doc); err != nil {
			return fmt.Errorf("archive plan: %w", err)
		}
		c.Logger.Info("plan archived", "id", doc.ID, "db", mongoDB)
	}

	v := &viewer{doc: doc, archive: archive, logger: loggerFromContext(ctx)}

	srv := &http.Server{Addr: addr, Handler: v.routes()}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	c.Logger.Info("viewer listening", "addr", addr, "plan", doc.ID)
	printInfo("Serving plan %s on %s", doc.ID, addr)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return ctx.Err()
}

// viewer serves the loaded plan and, when an archive is configured, the
// archived plans too.
type viewer struct {
	doc     plan.Document
	archive *store.Mongo
	logger  *log.Logger
}

func (v *viewer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(v.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/plan", func(w http.ResponseWriter, r *http.Request) {
		v.writePlan(w, v.doc)
	})
	r.Get("/floorplan.svg", func(w http.ResponseWriter, r *http.Request) {
		v.writeFloorplan(w, v.doc)
	})
	r.Get("/graph.svg", func(w http.ResponseWriter, r *http.Request) {
		v.writeGraph(r.Context(), w, v.doc)
	})

	if v.archive != nil {
		r.Get("/plans", v.handleList)
		r.Route("/plans/{id}", func(r chi.Router) {
			r.Get("/", v.archived(v.writePlan))
			r.Get("/floorplan.svg", v.archived(v.writeFloorplan))
			r.Get("/graph.svg", func(w http.ResponseWriter, r *http.Request) {
				doc, ok := v.lookup(w, r)
				if !ok {
					return
				}
				v.writeGraph(r.Context(), w, doc)
			})
		})
	}

	return r
}

func (v *viewer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		v.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "took", time.Since(start).Round(time.Microsecond))
	})
}

func (v *viewer) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := v.archive.List(r.Context())
	if err != nil {
		v.serverError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"plans":[`)
	for i, id := range ids {
		if i > 0 {
			fmt.Fprint(w, ",")
		}
		fmt.Fprintf(w, "%q", id)
	}
	fmt.Fprint(w, "]}\n")
}

// archived wraps a plan writer with an archive lookup on the id URL param.
func (v *viewer) archived(write func(http.ResponseWriter, plan.Document)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, ok := v.lookup(w, r)
		if !ok {
			return
		}
		write(w, doc)
	}
}

func (v *viewer) lookup(w http.ResponseWriter, r *http.Request) (plan.Document, bool) {
	id := chi.URLParam(r, "id")
	doc, err := v.archive.Get(r.Context(), id)
	if err != nil {
		if floorerrors.Is(err, floorerrors.ErrCodeNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
		} else {
			v.serverError(w, err)
		}
		return plan.Document{}, false
	}
	return doc, true
}

func (v *viewer) writePlan(w http.ResponseWriter, doc plan.Document) {
	w.Header().Set("Content-Type", "application/json")
	if err := plan.WritePlan(doc, w); err != nil {
		v.logger.Error("write plan response", "err", err)
	}
}

func (v *viewer) writeFloorplan(w http.ResponseWriter, doc plan.Document) {
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(floorplan.RenderSVG(doc,
		floorplan.WithProps(), floorplan.WithSeams(), floorplan.WithLabels()))
}

func (v *viewer) writeGraph(ctx context.Context, w http.ResponseWriter, doc plan.Document) {
	data, err := dot.RenderSVG(ctx, dot.ToDOT(doc, dot.Options{}))
	if err != nil {
		v.serverError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(data)
}

func (v *viewer) serverError(w http.ResponseWriter, err error) {
	v.logger.Error("request failed", "err", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
