// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/rpc/fixtures"
	"github.com/bitmark-inc/vestingd/rpc/listeners"
)

func routes(received *map[string][]*net.IPNet) listeners.Routes {
	return func(allow map[string][]*net.IPNet) *fiber.App {
		*received = allow
		app := fiber.New(fiber.Config{DisableStartupMessage: true})
		app.Get("/ping", func(c *fiber.Ctx) error {
			return c.SendString("pong")
		})
		return app
	}
}

func TestHTTPSListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	listen := freeAddress(t)
	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
		Allow: map[string][]string{
			"details": {"127.0.0.1/32", " ::1/128 "},
		},
	}

	config, _ := serverTLS(t)

	var allow map[string][]*net.IPNet
	l, err := listeners.NewHTTPS(&conf, logger.New(fixtures.LogCategory), config, routes(&allow))
	assert.Nil(t, err, "wrong NewHTTPS")
	assert.Equal(t, 2, len(allow["details"]), "wrong allow list")
	assert.True(t, allow["details"][0].Contains(net.ParseIP("127.0.0.1")), "wrong IPv4 entry")
	assert.True(t, allow["details"][1].Contains(net.ParseIP("::1")), "wrong IPv6 entry")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Close()

	client := &http.Client{
		Timeout: 5 * time.Second,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}

	var resp *http.Response
	for i := 0; i < 20; i++ {
		resp, err = client.Get("https://" + listen + "/ping")
		if nil == err {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	if nil != err {
		t.Fatalf("get error: %s", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status")
	assert.Equal(t, "pong", string(body), "wrong body")
}

func TestHTTPSListenerDisabled(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	var allow map[string][]*net.IPNet
	l, err := listeners.NewHTTPS(&listeners.HTTPSConfiguration{}, logger.New(fixtures.LogCategory), &tls.Config{}, routes(&allow))
	assert.Nil(t, err, "wrong error")
	assert.Nil(t, l, "listener created")
}

func TestHTTPSListenerInvalidConfiguration(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)
	var allow map[string][]*net.IPNet

	_, err := listeners.NewHTTPS(&listeners.HTTPSConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:2150"},
	}, log, &tls.Config{}, routes(&allow))
	assert.Equal(t, fault.ErrMissingParameters, err, "zero connections")

	_, err = listeners.NewHTTPS(&listeners.HTTPSConfiguration{
		MaximumConnections: 1,
		Listen:             []string{"127.0.0.1:2150"},
		Allow:              map[string][]string{"details": {"not-a-cidr"}},
	}, log, &tls.Config{}, routes(&allow))
	assert.NotNil(t, err, "invalid CIDR")
}
