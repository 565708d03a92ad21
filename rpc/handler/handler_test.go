// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/counter"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/rpc/fixtures"
	"github.com/bitmark-inc/vestingd/rpc/handler"
	"github.com/bitmark-inc/vestingd/rpc/node"
	"github.com/bitmark-inc/vestingd/rpc/server"
)

var (
	owner       = identity.Identity{0x11}
	beneficiary = identity.Identity{0x22}
)

func setup(t *testing.T, allow map[string][]*net.IPNet) (*fixtures.Engine, *fiber.App) {
	e := fixtures.Setup(t)
	log := logger.New(fixtures.LogCategory)

	count := &counter.Counter{}
	services := server.Services{
		Start:       time.Now(),
		Registry:    e.Registry,
		Directory:   e.Directory,
		Coprocessor: e.Coprocessor,
		Events:      e.Environment.Events,
		Replay:      e.Replay,
		Clock:       fixtures.Clock,
	}
	s := server.Create(log, "1.0", services, count)
	n := node.New(log, services.Start, "1.0", count, e.Registry, e.Environment.Events)

	h := handler.New(log, s, n, e.Registry, count, 10, allow)
	return e, h.App()
}

func everyone() map[string][]*net.IPNet {
	_, all, _ := net.ParseCIDR("0.0.0.0/0")
	return map[string][]*net.IPNet{
		handler.AllowDetails: {all},
		handler.AllowEvents:  {all},
		handler.AllowRPC:     {all},
	}
}

func get(t *testing.T, app *fiber.App, path string, reply interface{}) int {
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	if nil != err {
		t.Fatalf("request error: %s", err)
	}
	defer resp.Body.Close()

	if nil != reply {
		body, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(body, reply); nil != err {
			t.Fatalf("unmarshal error: %s  body: %s", err, body)
		}
	}
	return resp.StatusCode
}

func TestDetails(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, app := setup(t, everyone())

	var reply node.InfoReply
	status := get(t, app, "/vestingd/details", &reply)
	assert.Equal(t, http.StatusOK, status, "wrong status")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
}

func TestDetailsDenied(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, local, _ := net.ParseCIDR("127.0.0.1/32")
	_, app := setup(t, map[string][]*net.IPNet{handler.AllowDetails: {local}})

	assert.Equal(t, http.StatusForbidden, get(t, app, "/vestingd/details", nil), "details allowed")
	assert.Equal(t, http.StatusForbidden, get(t, app, "/vestingd/events", nil), "events allowed")
}

func TestWallets(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	e, app := setup(t, everyone())

	ids := make([]identity.Identity, 3)
	for i := range ids {
		id, err := e.Registry.CreateVestingWallet(context.Background(), owner, e.Token.Identity(), beneficiary, 2000, 100)
		assert.Nil(t, err, "create error")
		ids[i] = id
	}

	var wallets handler.WalletsReply
	status := get(t, app, "/vestingd/wallets/owner/"+owner.String()+"?count=2", &wallets)
	assert.Equal(t, http.StatusOK, status, "wrong status")
	assert.Equal(t, 2, len(wallets.Data), "wrong page size")
	assert.Equal(t, ids[0], wallets.Data[0].Account, "wrong first account")
	assert.Equal(t, ids[1], wallets.Data[1].Account, "wrong second account")

	status = get(t, app, "/vestingd/wallets/beneficiary/"+beneficiary.String()+"?start=2", &wallets)
	assert.Equal(t, http.StatusOK, status, "wrong status")
	assert.Equal(t, 1, len(wallets.Data), "wrong page size")
	assert.Equal(t, ids[2], wallets.Data[0].Account, "wrong account")
	assert.Equal(t, uint64(3), wallets.Next, "wrong next")

	var wallet handler.WalletReply
	status = get(t, app, "/vestingd/wallet/"+ids[1].String(), &wallet)
	assert.Equal(t, http.StatusOK, status, "wrong status")
	assert.Equal(t, owner, wallet.Owner, "wrong owner")
	assert.Equal(t, beneficiary, wallet.Beneficiary, "wrong beneficiary")
	assert.Equal(t, uint64(2100), wallet.End, "wrong end")

	var events node.EventsReply
	status = get(t, app, "/vestingd/events?count=5", &events)
	assert.Equal(t, http.StatusOK, status, "wrong status")
	assert.Equal(t, 3, len(events.Events), "wrong event count")
}

func TestErrors(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, app := setup(t, everyone())

	assert.Equal(t, http.StatusNotFound, get(t, app, "/vestingd/wallet/"+identity.Identity{7}.String(), nil), "unknown wallet")
	assert.Equal(t, http.StatusBadRequest, get(t, app, "/vestingd/wallet/xyz", nil), "bad identity")
	assert.Equal(t, http.StatusBadRequest, get(t, app, "/vestingd/events?count=1000", nil), "bad count")
	assert.Equal(t, http.StatusNotFound, get(t, app, "/nothing", nil), "unknown path")
}

func TestRPC(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, app := setup(t, everyone())

	body := `{"id":1,"method":"Node.Info","params":[{}]}`
	req := httptest.NewRequest(http.MethodPost, "/vestingd/rpc", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.Nil(t, err, "request error")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status")

	var reply struct {
		ID     int            `json:"id"`
		Result node.InfoReply `json:"result"`
		Error  interface{}    `json:"error"`
	}
	data, _ := io.ReadAll(resp.Body)
	err = json.Unmarshal(data, &reply)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, 1, reply.ID, "wrong id")
	assert.Nil(t, reply.Error, "unexpected error")
	assert.Equal(t, "1.0", reply.Result.Version, "wrong version")
}
