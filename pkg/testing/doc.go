// Package testing provides a headless harness for component tests.
//
// ComponentTester drives the same build, layout, and paint phases as a real
// host, but records paint output into a display list instead of rendering.
// Finders locate elements in the mounted tree, and snapshots compare the
// render tree and paint operations against golden files.
//
//	func TestGreeting(t *testing.T) {
//	    tester := testing.NewComponentTester(t)
//	    tester.PumpWidget(widgets.Text{Content: "hi"})
//	    if !tester.Find(testing.ByText("hi")).Exists() {
//	        t.Fatal("expected greeting")
//	    }
//	}
package testing
