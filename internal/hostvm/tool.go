// Package hostvm is the agent's host: the tool interface it negotiates
// with, a simulated VM that implements it, and the bridge that exposes
// the installed JNI table to emulated native code. The simulated VM
// plays the part of the real thing the same way the mock JNIEnv does for
// emulated Android libraries: reference tokens from counters, metadata
// from registries.
package hostvm

import "github.com/zboralski/indri/internal/jni"

// Capabilities is what an agent must negotiate before installing hooks.
type Capabilities struct {
	NativeMethodBindEvents bool
	JNITableReplacement    bool
}

// BindFunc is the native-method-bind event callback. The handler may
// write a replacement entry through newAddress; leaving it untouched
// keeps the VM's direct binding.
type BindFunc func(env jni.Env, method jni.MethodID, address uint64, newAddress *uint64)

// Tool is the diagnostic tool interface the agent consumes: capability
// negotiation, the bind event, metadata queries, and JNI-table access.
type Tool interface {
	// AddCapabilities requests the given capabilities; failure aborts
	// attach.
	AddCapabilities(caps Capabilities) error

	// SetNativeMethodBind installs the bind-event callback.
	SetNativeMethodBind(fn BindFunc) error

	// EnableNativeMethodBind turns delivery of the event on or off.
	EnableNativeMethodBind(enabled bool) error

	// MethodName returns a method's name and descriptor.
	MethodName(id jni.MethodID) (name, descriptor string, err error)

	// MethodDeclaringClass returns the class that declares a method.
	MethodDeclaringClass(id jni.MethodID) (jni.Class, error)

	// ClassSignature returns a class's descriptor, e.g. "Lcom/app/Main;".
	ClassSignature(c jni.Class) (string, error)

	// GetJNIFunctionTable returns a copy of the current process-wide
	// JNI dispatch table.
	GetJNIFunctionTable() (*jni.Functions, error)

	// SetJNIFunctionTable replaces the process-wide JNI dispatch table.
	SetJNIFunctionTable(t *jni.Functions) error
}
