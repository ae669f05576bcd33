/*
Package probset reads problem-set files.

A problem set is a plain text file with one equation per line,

	# comments start with a hash
	2*x + 3 = 0 ; x
	x^2 - 5*x + 6 = 0 ; x
	@matrix A * @matrix X - @matrix B = 0 ; X

Each line holds an equation, a semicolon, and the symbol to solve for.
Symbols default to scalar kind; a leading @matrix, @quat or @op marker
declares a symbol as noncommuting, and the kind sticks for the rest of
the line.

Loading of large problem sets is done asynchronously: Load opens and
validates the file synchronously, then parses in the background and
broadcasts each problem as soon as it is ready.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, the solveq authors

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package probset

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'solveq.probset'.
func tracer() tracing.Trace {
	return tracing.Select("solveq.probset")
}
