package launch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
)

var ErrTooManyAttempts = errors.New("launch: too many invalid answers")

// DefaultAttempts bounds how often a prompt is repeated.
const DefaultAttempts = 5

// Prompter asks setup questions on a line-oriented terminal.
type Prompter struct {
	in       *bufio.Scanner
	out      io.Writer
	Attempts int
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out, Attempts: DefaultAttempts}
}

// MatchChoice resolves answer against choices, case-insensitively. An exact
// match wins; otherwise answer must be a prefix of exactly one choice.
func MatchChoice(answer string, choices []string) (string, bool) {
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer == "" {
		return "", false
	}

	var match string
	matches := 0
	for _, c := range choices {
		lc := strings.ToLower(c)
		if lc == answer {
			return c, true
		}
		if strings.HasPrefix(lc, answer) {
			match = c
			matches++
		}
	}
	if matches == 1 {
		return match, true
	}
	return "", false
}

// Text asks a free-form question. Empty answers are retried.
func (p *Prompter) Text(prompt string) (string, error) {
	return p.ask(prompt, func(answer string) (string, bool) {
		answer = strings.TrimSpace(answer)
		return answer, answer != ""
	})
}

// Choice asks until the answer matches one of choices.
func (p *Prompter) Choice(prompt string, choices ...string) (string, error) {
	return p.ask(prompt, func(answer string) (string, bool) {
		return MatchChoice(answer, choices)
	})
}

// Confirm asks a yes/no question.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	answer, err := p.Choice(prompt, "Yes", "No")
	return answer == "Yes", err
}

// Port asks for a port number.
func (p *Prompter) Port(prompt string) (int, error) {
	answer, err := p.ask(prompt, func(answer string) (string, bool) {
		_, err := ParsePort(answer)
		return strings.TrimSpace(answer), err == nil
	})
	if err != nil {
		return 0, err
	}
	return ParsePort(answer)
}

func (p *Prompter) ask(prompt string, accept func(string) (string, bool)) (string, error) {
	attempts := p.Attempts
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	for i := 0; i < attempts; i++ {
		fmt.Fprint(p.out, prompt)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return "", fmt.Errorf("read answer: %w", err)
			}
			return "", fmt.Errorf("read answer: %w", io.ErrUnexpectedEOF)
		}
		if v, ok := accept(p.in.Text()); ok {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrTooManyAttempts, strings.TrimSpace(prompt))
}

// Complete fills in whatever o is missing for a networked match: port,
// host or join, and the address to use.
func (p *Prompter) Complete(o Options) (Options, error) {
	if o.Mode == ModePractice {
		return o, nil
	}

	var err error
	if o.Port == 0 {
		if o.Port, err = p.Port("Enter the port: "); err != nil {
			return o, err
		}
	}

	if o.Mode == ModeUnset {
		answer, err := p.Choice("Host or Join? ", "Host", "Join")
		if err != nil {
			return o, err
		}
		o.Mode = Mode(strings.ToLower(answer))
	}

	switch o.Mode {
	case ModeHost:
		if o.Address == "" {
			host := localAddress()
			ok, err := p.Confirm(fmt.Sprintf("Host on %s:%d? ", host, o.Port))
			if err != nil {
				return o, err
			}
			if ok {
				o.Address = host
			} else if o.Address, err = p.Text("Enter the IP: "); err != nil {
				return o, err
			}
		}
	case ModeJoin:
		if o.Address == "" {
			if o.Address, err = p.Text("Enter the IP: "); err != nil {
				return o, err
			}
		}
	}
	return o, nil
}

// localAddress picks the first non-loopback IPv4 address, or 0.0.0.0.
func localAddress() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "0.0.0.0"
	}
	for _, a := range addrs {
		if ipnet, ok := a.(*net.IPNet); ok && !ipnet.IP.IsLoopback() && ipnet.IP.To4() != nil {
			return ipnet.IP.String()
		}
	}
	return "0.0.0.0"
}
