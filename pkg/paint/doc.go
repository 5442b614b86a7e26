/*
Package paint provides styled terminal output through composable,
immutable style values.

Styling is done in two steps: build a style from a startpoint (a Color,
an Attr, or Plain), then use it to paint something:

	fmt.Printf("%s or %s or %s\n",
		paint.Red.Paint("Red"),
		paint.Bold.Paint("Bold"),
		paint.Red.Bold().Paint("Both!"))

Every modifier returns a new Style value; later modifiers override
earlier ones, so Plain.Fg(Red).Fg(Blue) paints blue. A Painted value
implements fmt.Formatter and can be passed to any fmt printing function
with any verb, width, or precision.

Styles can also scope a block of output. With applies the style, runs
the function, and restores the previous style afterwards, even if the
function panics. Inner scopes inherit unset fields from outer ones:

	paint.With(paint.Red, func() {
		fmt.Println("red")
		paint.With(paint.Bold, func() {
			fmt.Println("red and bold")
		})
		fmt.Println("red again")
	})

Escape-sequence emission and capability detection are delegated to
muesli/termenv. When the output stream is not a capable terminal (for
example when redirected to a file, or when NO_COLOR is set), painting
degrades silently to plain text.

Painting writes terminal state, not strings: applying a style and
resetting it happen on the Terminal's output stream at render time.
Formatting a Painted value into a buffer that is not that stream will
interleave escape sequences with the wrong writer; paint to the stream
the Terminal was opened on.

The current-style scope state is not synchronized. Concurrent painting
from multiple goroutines produces interleaved, undefined styling and is
not supported.
*/
package paint
