package irc

import (
	"fmt"
	"io"
	"strings"
)

const (
	// maxLineLength is the wire budget for one outbound line: the RFC's
	// 510-byte limit (512 minus CRLF) minus headroom for the fullhost a
	// server may prepend on rebroadcast to other clients.
	maxLineLength = 510 - 62
	// splitLookback bounds how far splitSend searches backwards from
	// maxLineLength for a space to break on, rather than mid-word.
	splitLookback = 20
)

// Writer is the outbound half of a connection: protocol-shaped sends built
// on top of an io.Writer, with automatic splitting of over-length messages.
type Writer interface {
	io.Writer

	Send(...interface{}) error
	Sendln(...interface{}) error
	Sendf(string, ...interface{}) error

	Privmsg(string, ...interface{}) error
	Privmsgln(string, ...interface{}) error
	Privmsgf(string, string, ...interface{}) error

	Notice(string, ...interface{}) error
	Noticeln(string, ...interface{}) error
	Noticef(string, string, ...interface{}) error

	CTCP(string, string, ...interface{}) error
	CTCPln(string, string, ...interface{}) error
	CTCPf(string, string, string, ...interface{}) error

	CTCPReply(string, string, ...interface{}) error
	CTCPReplyln(string, string, ...interface{}) error
	CTCPReplyf(string, string, string, ...interface{}) error

	// Notify replies to ev: a channel event gets a channel PRIVMSG back,
	// any other event gets a NOTICE to the given target.
	Notify(*Event, string, ...interface{}) error
	Notifyln(*Event, string, ...interface{}) error
	Notifyf(*Event, string, string, ...interface{}) error

	Join(...string) error
	Part(...string) error
	Quit(string) error
}

// Helper implements Writer over any io.Writer.
type Helper struct {
	io.Writer
}

func (h Helper) Send(args ...interface{}) error {
	_, err := fmt.Fprint(h, args...)
	return err
}

func (h Helper) Sendln(args ...interface{}) error {
	_, err := h.Write(joinArgsLn(args...))
	return err
}

func (h Helper) Sendf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(h, format, args...)
	return err
}

func (h Helper) Privmsg(target string, args ...interface{}) error {
	return h.splitSend(commandHeader(PRIVMSG, target), joinArgs(args...))
}

func (h Helper) Privmsgln(target string, args ...interface{}) error {
	return h.splitSend(commandHeader(PRIVMSG, target), joinArgsLn(args...))
}

func (h Helper) Privmsgf(target, format string, args ...interface{}) error {
	return h.splitSend(commandHeader(PRIVMSG, target), formatArgs(format, args...))
}

func (h Helper) Notice(target string, args ...interface{}) error {
	return h.splitSend(commandHeader(NOTICE, target), joinArgs(args...))
}

func (h Helper) Noticeln(target string, args ...interface{}) error {
	return h.splitSend(commandHeader(NOTICE, target), joinArgsLn(args...))
}

func (h Helper) Noticef(target, format string, args ...interface{}) error {
	return h.splitSend(commandHeader(NOTICE, target), formatArgs(format, args...))
}

func (h Helper) CTCP(target, tag string, data ...interface{}) error {
	return h.sendCTCP(PRIVMSG, target, tag, joinArgs(data...))
}

func (h Helper) CTCPln(target, tag string, data ...interface{}) error {
	return h.sendCTCP(PRIVMSG, target, tag, joinArgsLn(data...))
}

func (h Helper) CTCPf(target, tag, format string, data ...interface{}) error {
	return h.sendCTCP(PRIVMSG, target, tag, formatArgs(format, data...))
}

func (h Helper) CTCPReply(target, tag string, data ...interface{}) error {
	return h.sendCTCP(NOTICE, target, tag, joinArgs(data...))
}

func (h Helper) CTCPReplyln(target, tag string, data ...interface{}) error {
	return h.sendCTCP(NOTICE, target, tag, joinArgsLn(data...))
}

func (h Helper) CTCPReplyf(target, tag, format string, data ...interface{}) error {
	return h.sendCTCP(NOTICE, target, tag, formatArgs(format, data...))
}

func (h Helper) sendCTCP(via Type, target, tag string, body []byte) error {
	msg := CTCPpack([]byte(tag), body)
	_, err := fmt.Fprintf(h, "%s %s :%s", via, target, msg)
	return err
}

func (h Helper) Notify(ev *Event, target string, args ...interface{}) error {
	return h.splitSend(notifyHeader(ev, target), joinArgs(args...))
}

func (h Helper) Notifyln(ev *Event, target string, args ...interface{}) error {
	return h.splitSend(notifyHeader(ev, target), joinArgsLn(args...))
}

func (h Helper) Notifyf(ev *Event, target, format string, args ...interface{}) error {
	return h.splitSend(notifyHeader(ev, target), formatArgs(format, args...))
}

func (h Helper) Join(targets ...string) error {
	if len(targets) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(h, "JOIN :%s", strings.Join(targets, ","))
	return err
}

func (h Helper) Part(targets ...string) error {
	if len(targets) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(h, "PART :%s", strings.Join(targets, ","))
	return err
}

func (h Helper) Quit(msg string) error {
	_, err := fmt.Fprintf(h, "QUIT :%s", msg)
	return err
}

// commandHeader builds the "<CMD> <target> :" prefix shared by PRIVMSG and
// NOTICE sends.
func commandHeader(cmd Type, target string) []byte {
	return []byte(fmt.Sprintf("%s %s :", cmd, target))
}

// notifyHeader picks PRIVMSG-to-channel or NOTICE-to-sender depending on
// whether ev arrived on a channel, per Writer.Notify's contract.
func notifyHeader(ev *Event, target string) []byte {
	cmd := NOTICE
	if ev.IsTargetChan() {
		cmd = PRIVMSG
		target = ev.Channel
	}
	return commandHeader(cmd, target)
}

func joinArgs(args ...interface{}) []byte {
	return []byte(fmt.Sprint(args...))
}

func joinArgsLn(args ...interface{}) []byte {
	s := fmt.Sprintln(args...)
	return []byte(s[:len(s)-1])
}

func formatArgs(format string, args ...interface{}) []byte {
	return []byte(fmt.Sprintf(format, args...))
}

// splitSend writes header+msg as one line if it fits within maxLineLength,
// otherwise breaks msg into chunks of at most maxLineLength-len(header) bytes
// (preferring to break on a space within splitLookback of the limit) and
// re-sends header on each chunk.
func (h Helper) splitSend(header, msg []byte) error {
	budget := maxLineLength - len(header)
	if len(msg) <= budget {
		_, err := h.Write(append(header, msg...))
		return err
	}

	buf := make([]byte, maxLineLength)
	for len(msg) > 0 {
		size, skip := nextChunk(msg, budget)

		copy(buf, header)
		copy(buf[len(header):], msg[:size])
		if _, err := h.Write(buf[:len(header)+size]); err != nil {
			return err
		}
		msg = msg[size+skip:]
	}
	return nil
}

// nextChunk picks how many bytes of msg to emit next: all of it if it fits
// in budget, otherwise budget bytes unless a space is found within the last
// splitLookback bytes, in which case the break lands there and the space
// itself is skipped (skip=1) rather than sent.
func nextChunk(msg []byte, budget int) (size, skip int) {
	if len(msg) <= budget {
		return len(msg), 0
	}
	for i := budget; i > 0 && i > budget-splitLookback; i-- {
		if msg[i] == ' ' {
			return i, 1
		}
	}
	return budget, 0
}
