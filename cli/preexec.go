package cli

import "sync"

// PreExec is a function that may run before a dispatched [CommandFunc].
// It receives the sub-command name as given by the user, which is empty when the default command runs without a name.
type PreExec func(command string) error

var (
	preExecMux    sync.Mutex
	globalPreExec []PreExec
)

// AddGlobalPreExec registers a function that will be executed right before a [CommandFunc] runs.
// If an error is returned from a [PreExec], then the command will not be executed, and the error will be returned from Exec instead.
// Nothing is run when dispatch fails because no command was found.
//
// Passing a nil [PreExec] function to this function will panic.
func AddGlobalPreExec(fn PreExec) {
	if fn == nil {
		panic("nil pre-exec function")
	}
	preExecMux.Lock()
	defer preExecMux.Unlock()
	globalPreExec = append(globalPreExec, fn)
}

func runGlobalPreExec(command string) error {
	preExecMux.Lock()
	defer preExecMux.Unlock()
	for _, fn := range globalPreExec {
		if err := fn(command); err != nil {
			return err
		}
	}
	return nil
}
