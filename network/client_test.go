package network

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidkit/vidkit/key"
)

func TestNew(t *testing.T) {
	Convey("Given the network settings", t, func() {
		Convey("The shared transport is used by default", func() {
			viper.Set(key.NetworkFingerprint, false)
			viper.Set(key.NetworkTimeout, 5)

			c := New()
			So(c.Transport, ShouldEqual, Client.Transport)
			So(c.Timeout, ShouldEqual, 5*time.Second)
		})

		Convey("The fingerprinted transport is used when enabled", func() {
			viper.Set(key.NetworkFingerprint, true)
			defer viper.Set(key.NetworkFingerprint, false)

			c := New()
			So(c.Transport, ShouldEqual, Fingerprinted())
		})
	})
}

func TestFingerprinted(t *testing.T) {
	Convey("Given a plain http server", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Agent", r.Header.Get("User-Agent"))
			_, _ = io.WriteString(w, "pong")
		}))
		defer server.Close()

		Convey("Requests bypass TLS and reach the server", func() {
			client := &http.Client{Transport: Fingerprinted()}
			resp, err := client.Get(server.URL)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			So(err, ShouldBeNil)
			So(string(body), ShouldEqual, "pong")
		})

		Convey("Do returns the body and status with browser headers", func() {
			body, status, err := Do(context.Background(), http.MethodGet, server.URL, map[string]string{"Referer": "x"}, "")
			So(err, ShouldBeNil)
			So(status, ShouldEqual, http.StatusOK)
			So(body, ShouldEqual, "pong")
		})

		Convey("Do fails on a malformed url", func() {
			_, _, err := Do(context.Background(), http.MethodGet, "://bad", nil, "")
			So(err, ShouldNotBeNil)
		})
	})
}
