package api

import (
	"bytes"
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/CristiGvl/picoCPUStat/internal/platform"
	"github.com/CristiGvl/picoCPUStat/internal/snapshot"
)

func (s *Server) requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), s.timeout)
}

// fail maps reader errors onto status codes
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, platform.ErrUnsupported) {
		status = fiber.StatusNotImplemented
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// queryBool parses an optional boolean query parameter
func queryBool(c *fiber.Ctx, key string, fallback bool) (bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseBool(raw)
}

// CPU time endpoint
func (s *Server) getCPUTimes(c *fiber.Ctx) error {
	perCPU, err := queryBool(c, "percpu", false)
	if err != nil {
		return badRequest(c, "invalid percpu value")
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	times, err := s.cpuReader.Times(ctx, perCPU)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(times)
}

// CPU identity endpoint
func (s *Server) getCPUInfo(c *fiber.Ctx) error {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	infos, err := s.cpuReader.Infos(ctx)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(infos)
}

// CPU count endpoint
func (s *Server) getCPUCounts(c *fiber.Ctx) error {
	logical, err := queryBool(c, "logical", true)
	if err != nil {
		return badRequest(c, "invalid logical value")
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	count, err := s.cpuReader.Counts(ctx, logical)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"logical": logical, "count": count})
}

// Temperature endpoint
func (s *Server) getCPUTemps(c *fiber.Ctx) error {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	info, err := s.tempsReader.Sensors(ctx)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(info)
}

// Memory endpoint
func (s *Server) getMemory(c *fiber.Ctx) error {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	info, err := s.memoryReader.VirtualMemory(ctx)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(info)
}

func (s *Server) getSwap(c *fiber.Ctx) error {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	swap, err := s.memoryReader.SwapMemory(ctx)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(swap)
}

func (s *Server) getSwapDevices(c *fiber.Ctx) error {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	devices, err := s.memoryReader.SwapDevices(ctx)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(devices)
}

// Disk endpoints
func (s *Server) getDisk(c *fiber.Ctx) error {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	disks, err := s.diskReader.List(ctx)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(disks)
}

func (s *Server) getDiskUsage(c *fiber.Ctx) error {
	path := c.Query("path")
	if path == "" {
		return badRequest(c, "path required")
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	usage, err := s.diskReader.Usage(ctx, path)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(usage)
}

// Snapshot endpoint
func (s *Server) getSnapshot(c *fiber.Ctx) error {
	format, err := snapshot.ParseFormat(c.Query("format"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	snap, err := snapshot.Collect(ctx, snapshot.Sources{CPU: s.cpuReader, Memory: s.memoryReader, Temps: s.tempsReader})
	if err != nil {
		return fail(c, err)
	}

	var buf bytes.Buffer
	if err := snapshot.Encode(&buf, format, snap); err != nil {
		return fail(c, err)
	}

	c.Set(fiber.HeaderContentType, format.ContentType())
	return c.Send(buf.Bytes())
}
