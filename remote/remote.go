// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package remote serves bus regions to peripherals over a network
// link. A peripheral connects, claims an address range, and then
// answers the read and write traffic the machine generates there.
package remote

import (
	"bufio"
	"io"
	"log"
	"net"

	"github.com/ezrec/mos6502/bus"
)

// Wire protocol. Every message starts with an op byte; u16 fields are
// big endian.
const (
	OP_ACK  = uint8(0x00) // Response: accepted. A value byte follows for reads.
	OP_FAIL = uint8(0x01) // Response: refused.
	OP_BYE  = uint8(0x10) // Host is dropping the link.

	OP_MAP_IO = uint8(0x11) // Peripheral hello: {start u16, size u16}, size > 0.

	OP_EVENT_READ  = uint8(0x80) // Host read: {addr u16}. Reply OP_ACK {value u8}.
	OP_EVENT_WRITE = uint8(0x81) // Host write: {addr u16, value u8}. Reply OP_ACK.
)

type link interface {
	ReadFull(buf []uint8) error
	Send(msg []uint8) error
	Close() error
}

type tcpLink struct {
	conn   net.Conn
	reader *bufio.Reader
}

func newTCPLink(conn net.Conn) (li *tcpLink) {
	return &tcpLink{
		conn:   conn,
		reader: bufio.NewReader(conn),
	}
}

func (li *tcpLink) ReadFull(buf []uint8) (err error) {
	_, err = io.ReadFull(li.reader, buf)
	return
}

func (li *tcpLink) Send(msg []uint8) (err error) {
	_, err = li.conn.Write(msg)
	return
}

func (li *tcpLink) Close() error {
	return li.conn.Close()
}

// Device is one remote peripheral: an address range whose reads and
// writes travel the link.
type Device struct {
	Verbose bool   // Set to enable verbose logging.
	Start   uint16 // First address claimed.
	Size    int    // Bytes claimed.

	link link
	err  error
}

func handshake(li link) (dev *Device, err error) {
	var hello [5]uint8

	err = li.ReadFull(hello[:])
	if err != nil {
		return nil, err
	}

	if hello[0] != OP_MAP_IO {
		_ = li.Send([]uint8{OP_FAIL})
		return nil, ErrProtocol(hello[0])
	}

	start := uint16(hello[1])<<8 | uint16(hello[2])
	size := int(hello[3])<<8 | int(hello[4])
	if size == 0 || int(start)+size > 0x10000 {
		_ = li.Send([]uint8{OP_FAIL})
		return nil, bus.ErrRegionSize
	}

	err = li.Send([]uint8{OP_ACK})
	if err != nil {
		return nil, err
	}

	dev = &Device{
		Start: start,
		Size:  size,
		link:  li,
	}

	return dev, nil
}

// Accept waits for one peripheral on lis and completes its mapping
// handshake.
func Accept(lis net.Listener) (dev *Device, err error) {
	conn, err := lis.Accept()
	if err != nil {
		return nil, err
	}

	dev, err = handshake(newTCPLink(conn))
	if err != nil {
		conn.Close()
		return nil, err
	}

	return dev, nil
}

func (dev *Device) roundTrip(msg []uint8, value bool) (v uint8, err error) {
	err = dev.link.Send(msg)
	if err != nil {
		return
	}

	var status [1]uint8
	err = dev.link.ReadFull(status[:])
	if err != nil {
		return
	}

	switch status[0] {
	case OP_ACK:
	case OP_FAIL:
		err = ErrPeripheral
		return
	default:
		err = ErrProtocol(status[0])
		return
	}

	if value {
		var b [1]uint8
		err = dev.link.ReadFull(b[:])
		if err != nil {
			return
		}
		v = b[0]
	}

	return
}

// Read satisfies bus reads in the device's range. A failed device
// reads as open bus; the failure latches for Err.
func (dev *Device) Read(addr uint16) (value uint8) {
	if dev.err != nil {
		return bus.OpenBus
	}

	value, err := dev.roundTrip([]uint8{OP_EVENT_READ, uint8(addr >> 8), uint8(addr)}, true)
	if err != nil {
		dev.fail(err)
		return bus.OpenBus
	}

	return value
}

// Write forwards bus writes. Writes after a failure are dropped.
func (dev *Device) Write(addr uint16, value uint8) {
	if dev.err != nil {
		return
	}

	_, err := dev.roundTrip([]uint8{OP_EVENT_WRITE, uint8(addr >> 8), uint8(addr), value}, false)
	if err != nil {
		dev.fail(err)
	}
}

func (dev *Device) fail(err error) {
	dev.err = err
	log.Printf("remote: device $%04x offline: %v", dev.Start, err)
}

// Err reports the failure that took the device offline, if any.
func (dev *Device) Err() error {
	return dev.err
}

// Region registers the device's claimed range on b.
func (dev *Device) Region(b *bus.Bus) (re *bus.Region, err error) {
	re, err = b.AddIO(dev.Start, dev.Size, dev.Read, dev.Write)
	if err != nil {
		return nil, err
	}

	if dev.Verbose {
		log.Printf("remote: add %v", re)
	}

	return re, nil
}

// Close says goodbye and drops the link.
func (dev *Device) Close() (err error) {
	_ = dev.link.Send([]uint8{OP_BYE})
	return dev.link.Close()
}
