// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/counter"
	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/registry"
	"github.com/bitmark-inc/vestingd/rpc/node"
	"github.com/bitmark-inc/vestingd/vesting"
)

// defaults
const (
	defaultCount = 10
	appName      = "vestingd"
)

// access lists for restricted paths
const (
	AllowDetails = "details"
	AllowEvents  = "events"
	AllowRPC     = "rpc"
)

// Handler - HTTPS status and RPC bridge
type Handler struct {
	log                *logger.L
	server             *rpc.Server
	node               *node.Node
	registry           *registry.Registry
	count              *counter.Counter
	maximumConnections uint64
	allow              map[string][]*net.IPNet
}

// WalletReply - public data of one account
type WalletReply struct {
	vesting.Record
	End uint64 `json:"end"`
}

// WalletsReply - one page of an index
type WalletsReply struct {
	Next uint64          `json:"next,string"`
	Data []registry.Item `json:"data"`
}

// type to allow rpc system to interface to http request
type connection struct {
	in  io.Reader
	out io.Writer
}

func (c *connection) Read(p []byte) (int, error)  { return c.in.Read(p) }
func (c *connection) Write(d []byte) (int, error) { return c.out.Write(d) }
func (c *connection) Close() error                { return nil }

// New - handler serving from the RPC server and the node service
func New(log *logger.L, server *rpc.Server, n *node.Node, r *registry.Registry, count *counter.Counter, maximumConnections uint64, allow map[string][]*net.IPNet) *Handler {
	return &Handler{
		log:                log,
		server:             server,
		node:               n,
		registry:           r,
		count:              count,
		maximumConnections: maximumConnections,
		allow:              allow,
	}
}

// App - fiber application with all routes
func (h *Handler) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               appName,
		ErrorHandler:          h.errorHandler,
		DisableStartupMessage: true,
	})

	app.Use(h.limit)

	app.Post("/vestingd/rpc", h.restrict(AllowRPC), h.RPC)
	app.Get("/vestingd/details", h.restrict(AllowDetails), h.Details)
	app.Get("/vestingd/events", h.restrict(AllowEvents), h.Events)
	app.Get("/vestingd/wallets/owner/:identity", h.OwnerWallets)
	app.Get("/vestingd/wallets/beneficiary/:identity", h.BeneficiaryWallets)
	app.Get("/vestingd/wallet/:id", h.Wallet)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	return app
}

// RPC - performs a call to any normal RPC
func (h *Handler) RPC(c *fiber.Ctx) error {
	out := &bytes.Buffer{}
	codec := jsonrpc.NewServerCodec(&connection{in: bytes.NewReader(c.Body()), out: out})
	if err := h.server.ServeRequest(codec); nil != err {
		return err
	}
	c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
	c.Type("json")
	return c.Send(out.Bytes())
}

// Details - same response as the Node.Info RPC
func (h *Handler) Details(c *fiber.Ctx) error {
	var reply node.InfoReply
	if err := h.node.Info(&node.InfoArguments{}, &reply); nil != err {
		return err
	}
	return c.JSON(&reply)
}

// Events - one page of the event log
func (h *Handler) Events(c *fiber.Ctx) error {
	start, count, err := page(c)
	if nil != err {
		return err
	}

	var reply node.EventsReply
	if err := h.node.ListEvents(&node.EventsArguments{Start: start, Count: count}, &reply); nil != err {
		return err
	}
	return c.JSON(&reply)
}

// OwnerWallets - accounts created by an identity
func (h *Handler) OwnerWallets(c *fiber.Ctx) error {
	return h.wallets(c, h.registry.ListOwnerWallets)
}

// BeneficiaryWallets - accounts paying an identity
func (h *Handler) BeneficiaryWallets(c *fiber.Ctx) error {
	return h.wallets(c, h.registry.ListBeneficiaryWallets)
}

// Wallet - public schedule data of one account
func (h *Handler) Wallet(c *fiber.Ctx) error {
	id, err := identity.FromString(c.Params("id"))
	if nil != err {
		return err
	}

	a, err := h.registry.Open(context.Background(), id)
	if nil != err {
		return err
	}

	return c.JSON(&WalletReply{
		Record: a.Record(),
		End:    a.End(),
	})
}

func (h *Handler) wallets(c *fiber.Ctx, list func(identity.Identity, uint64, int) ([]registry.Item, error)) error {
	who, err := identity.FromString(c.Params("identity"))
	if nil != err {
		return err
	}
	start, count, err := page(c)
	if nil != err {
		return err
	}

	items, err := list(who, start, count)
	if nil != err {
		return err
	}

	reply := WalletsReply{
		Next: start,
		Data: items,
	}
	if n := len(items); n > 0 {
		reply.Next = items[n-1].N + 1
	}
	return c.JSON(&reply)
}

// limit the number of requests in progress
func (h *Handler) limit(c *fiber.Ctx) error {
	if !h.count.Acquire(h.maximumConnections) {
		return fiber.ErrServiceUnavailable
	}
	defer h.count.Decrement()
	return c.Next()
}

// only addresses in the access list for name may continue
func (h *Handler) restrict(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := net.ParseIP(c.IP())
		if nil != ip {
			for _, cidr := range h.allow[name] {
				if cidr.Contains(ip) {
					return c.Next()
				}
			}
		}
		h.log.Warnf("deny access: %s  to: %q", c.IP(), c.Path())
		return fiber.ErrForbidden
	}
}

func (h *Handler) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	switch e := err.(type) {
	case *fiber.Error:
		code = e.Code
	default:
		switch {
		case fault.IsErrNotFound(err):
			code = fiber.StatusNotFound
		case fault.IsErrInvalid(err), fault.IsErrLength(err):
			code = fiber.StatusBadRequest
		case fault.IsErrAccess(err):
			code = fiber.StatusForbidden
		case fault.IsErrExists(err):
			code = fiber.StatusConflict
		}
	}

	if code >= fiber.StatusInternalServerError {
		h.log.Errorf("path: %s  error: %s", c.Path(), err)
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

// start and count query values
func page(c *fiber.Ctx) (uint64, int, error) {
	start := uint64(0)
	if s := c.Query("start"); "" != s {
		n, err := strconv.ParseUint(s, 10, 64)
		if nil != err {
			return 0, 0, fault.ErrInvalidCount
		}
		start = n
	}
	return start, c.QueryInt("count", defaultCount), nil
}
