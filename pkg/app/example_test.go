package app_test

import (
	"fmt"

	"github.com/go-vane/vane/pkg/app"
)

// consoleRenderer is a toy rendering collaborator that prints what it is
// asked to materialize.
type consoleRenderer struct{}

func (consoleRenderer) Render(node *app.Node, container app.Container, svg bool) {
	if node == nil {
		fmt.Println("teardown")
		return
	}
	root := node.Component.(*app.ComponentOptions)
	fmt.Printf("render %s\n", root.Name)
}

func (consoleRenderer) CreateNode(comp app.Component, props app.Props) *app.Node {
	return &app.Node{Component: comp, Props: props}
}

// consoleContainer is a toy host surface.
type consoleContainer struct {
	owner *app.App
}

func (c *consoleContainer) Owner() *app.App         { return c.owner }
func (c *consoleContainer) SetOwner(owner *app.App) { c.owner = owner }

// This example builds an application, registers global resources, and drives
// it through its one-shot mount/unmount lifecycle.
func Example() {
	factory := app.NewFactory(consoleRenderer{})
	a := factory.CreateApp(&app.ComponentOptions{Name: "root"}, nil)

	// Registrations chain and are visible to every descendant unit of work.
	a.RegisterComponent("badge", &app.ComponentOptions{Name: "badge"}).
		Provide("theme", "dark")

	a.Mount(&consoleContainer{})
	a.Unmount()

	// Output:
	// render root
	// teardown
}

// This example resolves an injected value from outside the instantiation
// tree, the one place the active-application tracker is consulted.
func ExampleApp_RunWithContext() {
	factory := app.NewFactory(consoleRenderer{})
	a := factory.CreateApp(&app.ComponentOptions{Name: "root"}, nil)
	a.Provide("greeting", "hello")

	a.RunWithContext(func() any {
		value, _ := app.Inject("greeting")
		fmt.Println(value)
		return nil
	})

	// Output:
	// hello
}
