package shell

import (
	"os"
	"strings"
)

// Environment markers detection reads. The JPY variables are exported
// by notebook kernels to their child processes; the COLAB variables by
// the hosted service runtime.
const (
	envJupyterParent  = "JPY_PARENT_PID"
	envJupyterSession = "JPY_SESSION_NAME"
	envColabRelease   = "COLAB_RELEASE_TAG"
	envColabJupyterIP = "COLAB_JUPYTER_IP"
	envTerm           = "TERM"
)

// hostedNameFragment marks a hosted service in a kernel session name.
const hostedNameFragment = "colab"

// Facts are the raw observations detection resolves from. The detect
// command surfaces them for troubleshooting.
type Facts struct {
	JupyterParent  bool
	SessionName    string
	HasSession     bool
	ColabRelease   bool
	ColabJupyterIP bool
	StdoutTTY      bool
	Term           string
}

// Observe collects detection facts through the given probe. A nil
// probe yields zero facts.
func Observe(p Probe) Facts {
	if p == nil {
		return Facts{}
	}

	var f Facts
	_, f.JupyterParent = p.LookupEnv(envJupyterParent)
	f.SessionName, f.HasSession = p.LookupEnv(envJupyterSession)
	_, f.ColabRelease = p.LookupEnv(envColabRelease)
	_, f.ColabJupyterIP = p.LookupEnv(envColabJupyterIP)
	f.StdoutTTY = p.IsTerminal(os.Stdout.Fd())
	f.Term, _ = p.LookupEnv(envTerm)
	return f
}

// Resolve classifies the observed facts into a shell descriptor.
func (f Facts) Resolve() Info {
	// Hosted service markers win outright; the service does not
	// always export the kernel variables.
	if f.ColabRelease || f.ColabJupyterIP {
		return Info{Kind: KindHosted, Name: hostedNameFragment}
	}

	if f.JupyterParent || f.HasSession {
		name := f.SessionName
		if name == "" {
			name = "jupyter"
		}
		if strings.Contains(strings.ToLower(name), hostedNameFragment) {
			return Info{Kind: KindHosted, Name: name}
		}
		return Info{Kind: KindNotebook, Name: name}
	}

	if f.StdoutTTY {
		name := f.Term
		if name == "" {
			name = "terminal"
		}
		return Info{Kind: KindTerminal, Name: name}
	}

	return Info{Kind: KindNone}
}

// DescribeFrom resolves the host environment through the given probe.
func DescribeFrom(p Probe) Info {
	return Observe(p).Resolve()
}

// Describe resolves the host environment of the running process.
func Describe() Info {
	return DescribeFrom(System())
}
