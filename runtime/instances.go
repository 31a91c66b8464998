package runtime

import "github.com/vcrobe/nojs-landing/vdom"

const rootKey = "__root__"

// instanceTree tracks keyed component instances across render cycles.
// It is shared by the DOM renderer and the static renderer.
type instanceTree struct {
	instances   map[string]Component
	initialized map[string]bool
	activeKeys  map[string]bool
}

func newInstanceTree() *instanceTree {
	return &instanceTree{
		instances:   make(map[string]Component),
		initialized: make(map[string]bool),
		activeKeys:  make(map[string]bool),
	}
}

// renderRoot runs one full cycle starting at root and sweeps unmounted children.
func (t *instanceTree) renderRoot(r Renderer, root Component) *vdom.VNode {
	if root == nil {
		return nil
	}

	t.activeKeys = make(map[string]bool)

	root.SetRenderer(r)
	if !t.initialized[rootKey] {
		if initializer, ok := root.(Initializer); ok {
			callOnInit(initializer, rootKey)
		}
		t.initialized[rootKey] = true
	}
	if receiver, ok := root.(ParameterReceiver); ok {
		callOnPropertiesSet(receiver, rootKey)
	}

	node := root.Render(r)

	t.sweep()
	return node
}

// renderChild reuses the instance stored under key, or stores childWithProps
// when the key is new, and renders it.
func (t *instanceTree) renderChild(r Renderer, key string, childWithProps Component) *vdom.VNode {
	t.activeKeys[key] = true

	instance, exists := t.instances[key]
	if !exists {
		instance = childWithProps
		t.instances[key] = instance
	} else if updater, ok := instance.(PropUpdater); ok && instance != childWithProps {
		updater.ApplyProps(childWithProps)
	}

	instance.SetRenderer(r)

	if !t.initialized[key] {
		if initializer, ok := instance.(Initializer); ok {
			callOnInit(initializer, key)
		}
		t.initialized[key] = true
	}

	if receiver, ok := instance.(ParameterReceiver); ok {
		callOnPropertiesSet(receiver, key)
	}

	node := instance.Render(r)
	if node != nil && node.Key == "" {
		node.Key = key
	}
	return node
}

// sweep removes components that were not rendered in this cycle
// and calls their OnDestroy lifecycle method if they implement Cleaner.
func (t *instanceTree) sweep() {
	for key, instance := range t.instances {
		if t.activeKeys[key] {
			continue
		}
		if cleaner, ok := instance.(Cleaner); ok {
			callOnDestroy(cleaner, key)
		}
		delete(t.instances, key)
		delete(t.initialized, key)
	}
}

// instance returns the component stored under key, if any.
func (t *instanceTree) instance(key string) (Component, bool) {
	c, ok := t.instances[key]
	return c, ok
}
