package machine

import "ippcode22/lang/ipperr"

// frameStore holds the three frame roles described in spec.md §3: the
// global frame (always present), the temporary frame (present or absent),
// and the local frame stack.
type frameStore struct {
	gf *Frame
	tf *Frame
	lf []*Frame
}

func newFrameStore() *frameStore {
	return &frameStore{gf: newFrame()}
}

// createTemp sets TF to a fresh empty frame, discarding any prior contents.
func (fs *frameStore) createTemp() {
	fs.tf = newFrame()
}

// pushLocal moves TF onto the top of the local frame stack; TF becomes
// absent. Requires TF to exist (NOFRAME otherwise).
func (fs *frameStore) pushLocal() error {
	if fs.tf == nil {
		return ipperr.New(ipperr.NoFrame, "temporary frame does not exist")
	}
	fs.lf = append(fs.lf, fs.tf)
	fs.tf = nil
	return nil
}

// popLocal moves the top of the local frame stack back into TF, replacing
// any prior TF contents. Requires the stack to be non-empty (NOFRAME
// otherwise).
func (fs *frameStore) popLocal() error {
	n := len(fs.lf)
	if n == 0 {
		return ipperr.New(ipperr.NoFrame, "local frame stack is empty")
	}
	fs.tf = fs.lf[n-1]
	fs.lf = fs.lf[:n-1]
	return nil
}

// resolve returns the frame addressed by sel, or a NOFRAME error if that
// frame role is currently absent.
func (fs *frameStore) resolve(sel FrameSel) (*Frame, error) {
	switch sel {
	case GF:
		return fs.gf, nil
	case TF:
		if fs.tf == nil {
			return nil, ipperr.New(ipperr.NoFrame, "temporary frame does not exist")
		}
		return fs.tf, nil
	case LF:
		if len(fs.lf) == 0 {
			return nil, ipperr.New(ipperr.NoFrame, "local frame stack is empty")
		}
		return fs.lf[len(fs.lf)-1], nil
	default:
		panic("machine: invalid frame selector") // loader guarantees a valid selector
	}
}
