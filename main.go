package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"DIYCalc/internal/calc/framing"
	"DIYCalc/internal/calc/paint"
	"DIYCalc/internal/calc/premium/autodesign"
	"DIYCalc/internal/calc/premium/batch"
	"DIYCalc/internal/calc/premium/importer"
	"DIYCalc/internal/calc/premium/recommend"
	"DIYCalc/internal/calc/report"
	"DIYCalc/internal/calc/slab"
	"DIYCalc/internal/catalog"
	"DIYCalc/internal/config"
	"DIYCalc/internal/limit"
	"DIYCalc/internal/sitemap"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, cfg config.Config, cat *catalog.Catalog, limiter *limit.IPRateLimiter) {
	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	framingH := &framing.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	autodesignH := &autodesign.Handler{}
	recommendH := &recommend.Handler{}
	reportH := &report.Handler{BaseURL: cfg.BaseURL}
	slabH := &slab.Handler{}
	paintH := &paint.Handler{}

	tools := api.PathPrefix("/tools").Subrouter()
	tools.HandleFunc("/framing/calc", framingH.Calc).Methods("POST")
	tools.HandleFunc("/framing/form", framingH.Form).Methods("POST")
	tools.HandleFunc("/framing/batch", batchH.Framing).Methods("POST")
	tools.HandleFunc("/framing/import", importerH.Framing).Methods("POST")
	tools.HandleFunc("/framing/export", importerH.Export).Methods("POST")
	tools.HandleFunc("/framing/compare", autodesignH.Framing).Methods("POST")
	tools.HandleFunc("/framing/lumber", recommendH.Framing).Methods("POST")
	tools.HandleFunc("/framing/report/pdf", reportH.Generate).Methods("POST")
	tools.HandleFunc("/framing/report/html", reportH.Print).Methods("POST")
	tools.HandleFunc("/lumber/calc", recommendH.Lumber).Methods("POST")
	tools.HandleFunc("/slab/calc", slabH.Calc).Methods("POST")
	tools.HandleFunc("/paint/calc", paintH.Calc).Methods("POST")
	tools.HandleFunc("/report/pdf", reportH.Notes).Methods("POST")

	catalogH := &catalog.Handler{Catalog: cat}
	api.HandleFunc("/catalog/categories", catalogH.Categories).Methods("GET")
	api.HandleFunc("/catalog/categories/{slug}", catalogH.Category).Methods("GET")
	api.HandleFunc("/catalog/calculators/{slug}", catalogH.Calculator).Methods("GET")
	api.HandleFunc("/catalog/search", catalogH.Search).Methods("GET")

	sitemapH := &sitemap.Handler{BaseURL: cfg.BaseURL, Catalog: cat}
	mux.HandleFunc("/sitemap.xml", sitemapH.Serve).Methods("GET")

	mainFileServer := http.FileServer(http.Dir(cfg.StaticDir))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	cat, err := catalog.Load()
	if err != nil {
		log.Fatal(err)
	}

	limiter := limit.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	go limiter.Run(ctx, time.Minute, 10*time.Minute)

	mux := mux.NewRouter()
	HandleList(mux, cfg, cat, limiter)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           CORS(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLS() {
			log.Printf("Starting server on %s (TLS)", cfg.Addr)
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			log.Printf("Starting server on %s", cfg.Addr)
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
