// Package relocate moves workaround attributes from code block wrappers
// onto the code elements they contain.
//
// Document renderers such as Pandoc only attach attributes
// to the <pre> element of a code block.
// Presentation plugins, however, look for them on the inner <code>.
// [Relocator] fixes this up after rendering:
//
//	<pre data-line-numbers="1-3" class="js"><code>...</code></pre>
//
// becomes
//
//	<pre class="js"><code data-line-numbers="1-3">...</code></pre>
package relocate
