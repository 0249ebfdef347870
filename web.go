/*
	TopMap, top-down renderer for block game maps
	Copyright (C) 2022 Maxim Zhuchkov

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU Affero General Public License as published
	by the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU Affero General Public License for more details.

	You should have received a copy of the GNU Affero General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.

	Contact me via mail: q3.max.2011@yandex.ru or Discord: MaX#6717
*/

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/topmap/TopMap/output"
)

func robotsHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "User-agent: *\nDisallow: /\n\n\n")
}

// artifactHandler serves a file written by the last render.
func (s *paletteStore) artifactHandler(name, contentType string) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		p := path.Join(s.outputDir, name)
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			http.Error(w, name+" was not rendered yet", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		http.ServeFile(w, r, p)
	}
}

func createRouter(s *paletteStore) http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/robots.txt", robotsHandler).Methods("GET")
	router.HandleFunc("/colors", apiHandle(s.colorsHandlerGET)).Methods("GET")
	router.HandleFunc("/colors/{name}", apiHandle(s.colorLookupHandler)).Methods("GET")
	router.HandleFunc("/map", s.artifactHandler(output.MapFilename, "image/jpeg")).Methods("GET")
	router.HandleFunc("/map/thumb", s.artifactHandler(output.ThumbnailFilename, "image/png")).Methods("GET")
	router.HandleFunc("/unknown", s.artifactHandler(output.UnknownFilename, "text/plain; charset=utf-8")).Methods("GET")

	router1 := handlers.ProxyHeaders(router)
	router2 := handlers.CompressHandler(router1)
	router3 := handlers.CustomLoggingHandler(os.Stdout, router2, customLogger)
	router4 := handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(router3)
	return router4
}

func runWeb(addr string, s *paletteStore, exitchan <-chan struct{}) {
	if addr == "" {
		log.Println("Not starting web server because listen address is empty")
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.watch(ctx)
	websrv := http.Server{
		Addr:    addr,
		Handler: createRouter(s),
	}
	log.Println("Web server listens on http://" + addr + "/")
	go func() {
		if err := websrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Web server returned an error: %s\n", err)
		}
	}()
	<-exitchan
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := websrv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server Shutdown Failed:%+v", err)
	}
}
