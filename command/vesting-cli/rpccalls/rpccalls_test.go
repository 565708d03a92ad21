// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"net"
	"net/rpc/jsonrpc"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/counter"
	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/rpc/fixtures"
	"github.com/bitmark-inc/vestingd/rpc/server"
)

// client connected to a loopback server over the fixture engine
func setup(t *testing.T, key *btcec.PrivateKey, out *bytes.Buffer) (*fixtures.Engine, *Client) {
	e := fixtures.Setup(t)

	s := server.Create(
		logger.New(fixtures.LogCategory),
		"1.0",
		server.Services{
			Start:       time.Now(),
			Registry:    e.Registry,
			Directory:   e.Directory,
			Coprocessor: e.Coprocessor,
			Events:      e.Environment.Events,
			Replay:      e.Replay,
			Clock:       fixtures.Clock,
		},
		&counter.Counter{},
	)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if nil != err {
		t.Fatalf("listen error: %s", err)
	}
	t.Cleanup(func() { _ = l.Close() })

	go func() {
		for {
			conn, err := l.Accept()
			if nil != err {
				return
			}
			go s.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()

	conn, err := net.Dial("tcp", l.Addr().String())
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}

	c := newClient(conn, key, nil != out, out)
	c.clock = fixtures.Clock
	t.Cleanup(c.Close)

	return e, c
}

func TestReadOnlyClient(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	out := &bytes.Buffer{}
	e, c := setup(t, nil, out)

	info, err := c.GetNodeInfo()
	assert.Nil(t, err, "node info")
	assert.Equal(t, "1.0", info.Version, "wrong version")
	assert.Contains(t, out.String(), "Node.Info request:", "request not shown")
	assert.Contains(t, out.String(), "Node.Info reply after ", "reply not shown")

	tokens, err := c.ListTokens()
	assert.Nil(t, err, "list tokens")
	assert.Equal(t, e.Token.Identity(), tokens.Tokens[0].Token, "wrong token")

	_, err = c.Caller()
	assert.Equal(t, fault.ErrNotPrivateKey, err, "caller without key")

	_, err = c.CreateWallet(&CreateData{Token: e.Token.Identity()})
	assert.Equal(t, fault.ErrNotPrivateKey, err, "signed call without key")

	_, err = c.WalletInfo(identity.Identity{7})
	assert.NotNil(t, err, "unknown wallet")
	assert.Equal(t, fault.ErrAccountNotFound.Error(), err.Error(), "wrong error")
	assert.Contains(t, out.String(), "Vesting.Info error after ", "error not shown")
	assert.Contains(t, out.String(), fault.ErrAccountNotFound.Error(), "error text not shown")
}

func TestQuietClient(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, c := setup(t, nil, nil)
	c.handle = &bytes.Buffer{}

	_, err := c.GetNodeInfo()
	assert.Nil(t, err, "node info")
	assert.Equal(t, 0, c.handle.(*bytes.Buffer).Len(), "output when not verbose")
}

func TestWalletLifecycle(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	owner, _ := btcec.NewPrivateKey()
	beneficiary, _ := btcec.NewPrivateKey()
	ownerID := identity.FromPublicKey(owner.PubKey())
	beneficiaryID := identity.FromPublicKey(beneficiary.PubKey())

	e, c := setup(t, owner, nil)
	tokenID := e.Token.Identity()

	_, err := c.Mint(tokenID, ownerID, 1000)
	assert.Nil(t, err, "mint")

	account, err := c.CreateWallet(&CreateData{
		Token:       tokenID,
		Beneficiary: beneficiaryID,
		Start:       1000,
		Duration:    100,
	})
	assert.Nil(t, err, "create wallet")

	err = c.SetOperator(tokenID, account, 5000)
	assert.Nil(t, err, "set operator")

	total, err := c.Deposit(account, tokenID, 600)
	assert.Nil(t, err, "deposit")

	value, err := c.Decrypt(total)
	assert.Nil(t, err, "decrypt total")
	assert.Equal(t, uint64(600), value, "wrong total allocation")

	e.Time = 1050

	releasable, err := c.Releasable(account, tokenID)
	assert.Nil(t, err, "releasable")
	value, err = c.Decrypt(releasable)
	assert.Nil(t, err, "decrypt releasable")
	assert.Equal(t, uint64(300), value, "wrong releasable")

	vested, err := c.VestedAmount(account, tokenID, 1100)
	assert.Nil(t, err, "vested")
	value, err = c.Decrypt(vested)
	assert.Nil(t, err, "decrypt vested")
	assert.Equal(t, uint64(600), value, "wrong vested at end")

	_, err = c.Release(account, tokenID)
	assert.Nil(t, err, "release")

	released, err := c.Released(account, tokenID)
	assert.Nil(t, err, "released")
	value, err = c.Decrypt(released)
	assert.Nil(t, err, "decrypt released")
	assert.Equal(t, uint64(300), value, "wrong released")

	balance, err := c.Balance(tokenID, ownerID)
	assert.Nil(t, err, "balance")
	value, err = c.Decrypt(balance)
	assert.Nil(t, err, "decrypt balance")
	assert.Equal(t, uint64(400), value, "wrong owner balance")

	wallets, err := c.BeneficiaryWallets(beneficiaryID, 0, 10)
	assert.Nil(t, err, "beneficiary wallets")
	assert.Equal(t, 1, len(wallets.Data), "wrong wallet count")

	events, err := c.ListEvents(0, 10)
	assert.Nil(t, err, "events")
	assert.True(t, len(events.Events) >= 2, "missing events")
}
