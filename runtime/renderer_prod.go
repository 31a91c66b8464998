//go:build !dev
// +build !dev

package runtime

import (
	"fmt"

	"github.com/vcrobe/nojs-landing/console"
)

// callOnInit invokes OnInit, recovering and logging a panic so one broken
// component does not take the page down.
func callOnInit(initializer Initializer, key string) {
	defer recoverLifecycle("OnInit", key)
	initializer.OnInit()
}

// callOnPropertiesSet invokes OnPropertiesSet with the same recovery.
func callOnPropertiesSet(receiver ParameterReceiver, key string) {
	defer recoverLifecycle("OnPropertiesSet", key)
	receiver.OnPropertiesSet()
}

// callOnDestroy invokes OnDestroy with the same recovery.
func callOnDestroy(cleaner Cleaner, key string) {
	defer recoverLifecycle("OnDestroy", key)
	cleaner.OnDestroy()
}

func recoverLifecycle(hook, key string) {
	if rec := recover(); rec != nil {
		console.Error(fmt.Sprintf("%s panic in component %s: %v", hook, key, rec))
	}
}
