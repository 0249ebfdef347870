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
	"io"
	"log"
	"os"

	"github.com/gorilla/handlers"
	"github.com/natefinch/lumberjack"
)

func customLogger(_ io.Writer, params handlers.LogFormatterParams) {
	r := params.Request
	ip := r.Header.Get("X-Forwarded-For")
	if ip == "" {
		ip = r.RemoteAddr
	}
	ua := r.Header.Get("user-agent")
	log.Println("["+ip+"]", r.Method, params.StatusCode, r.RequestURI, "["+ua+"]")
}

func createLogger(fpath string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename: fpath,
		MaxSize:  10,
		Compress: true,
	}
}

// setupLogging sends the standard logger to stdout and a rotated log file.
func setupLogging(fpath string) io.Closer {
	l := createLogger(fpath)
	log.SetOutput(io.MultiWriter(l, os.Stdout))
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	return l
}
