package textfile

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ustring"
	"github.com/npillmayer/ustring/codec"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

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

// Some constants for fragement size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// Fragment describes one decoded fragment of a text file. Fragments are
// published in file order.
type Fragment struct {
	Pos   int64 // byte position of the fragment within the file
	Bytes int   // number of encoded bytes consumed
	Chars int   // number of code points decoded from the fragment
}

// Text represents an OS file which will be loaded as a UString.
type Text struct {
	path    string         // file name
	info    os.FileInfo    // result from Stat(path)
	file    *os.File       // file handle
	cast    *caster.Caster // broadcaster for async file loading
	content *ustring.U32   // decoded content, growing fragment by fragment
	frags   []Fragment     // record of published fragments, in file order
	err     error          // remember last I/O or decoding error
	done    chan struct{}  // closed when loading has finished
}

// Load reads a file, which must be a text file, and loads it as a
// UString. Clients may indicate a recommended fragment length; a
// fragSize of 0 lets Load pick a sensible default from the file size.
//
// Loading is done asynchronously, but this is transparent to the client:
// Wait blocks until the content is complete, Fragments streams loading
// progress. Opening of the file is always done synchronously.
func Load(name string, fragSize int64) (*Text, error) {
	t, err := openFile(name)
	if err != nil {
		return nil, err
	}
	if fragSize <= 0 || fragSize > tenKb {
		if t.info.Size() < 64 {
			fragSize = t.info.Size()
		} else if t.info.Size() < 1024 {
			fragSize = 64
		} else if t.info.Size() < tenKb {
			fragSize = 256
		} else if t.info.Size() < hundredKb {
			fragSize = 512
		} else if t.info.Size() < oneMb {
			fragSize = twoKb
		} else {
			fragSize = sixKb
		}
	}
	if fragSize == 0 { // empty file
		fragSize = 1
	}
	tracer().Debugf("loading %q (%d bytes) with fragment size %d", name, t.info.Size(), fragSize)
	go t.loadAllFragments(fragSize)
	return t, nil
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(name string) (*Text, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	t := &Text{
		path:    name,
		info:    fi,
		file:    file,
		cast:    caster.New(nil), // we will broadcast messages when fragments are loaded
		content: &ustring.U32{},
		done:    make(chan struct{}),
	}
	return t, nil
}

// Size returns the size of the underlying file in bytes.
func (t *Text) Size() int64 {
	return t.info.Size()
}

// Path returns the name the file was opened under.
func (t *Text) Path() string {
	return t.path
}

// Wait blocks until the file is fully loaded and returns the decoded
// content. The returned UString is owned by t; clients wanting to mutate
// it concurrently should Clone it. A loading error is returned alongside
// the content decoded so far.
func (t *Text) Wait() (*ustring.U32, error) {
	<-t.done
	return t.content, t.err
}

// Done returns a channel that is closed once loading has finished.
func (t *Text) Done() <-chan struct{} {
	return t.done
}

// FragmentList returns the record of all published fragments. It blocks
// until loading has finished.
func (t *Text) FragmentList() []Fragment {
	<-t.done
	return t.frags
}

// Fragments subscribes to fragment completion events. The returned
// channel is closed when the whole file has been published or ctx is
// done. Subscribing after loading has finished yields a closed channel.
func (t *Text) Fragments(ctx context.Context) <-chan Fragment {
	out := make(chan Fragment)
	ch, ok := t.cast.Sub(ctx, 16)
	if !ok {
		close(out)
		return out
	}
	go func() {
		defer close(out)
		for m := range ch {
			out <- m.(Fragment)
		}
	}()
	return out
}

// --- File loading goroutine ------------------------------------------------

// loadAllFragments reads and decodes the file fragment-wise. A multi-byte
// character cut at a fragment boundary is detected with codec.Validate
// and its lead bytes are carried over to the next fragment, so fragment
// boundaries never split characters in the decoded content.
func (t *Text) loadAllFragments(fragSize int64) {
	defer close(t.done)
	defer t.cast.Close()
	defer t.file.Close()
	frag := make([]byte, fragSize+7) // room for a carried remainder
	rem := 0                         // carried bytes of a cut character
	pos := int64(0)
	for {
		n, err := t.file.Read(frag[rem : rem+int(fragSize)])
		if n > 0 {
			chunk := frag[:rem+n]
			cut := len(chunk)
			if off := codec.Validate(chunk); off != codec.NotFound && len(chunk)-off < 7 {
				cut = off // truncated trailing character, carry it over
			}
			before := t.content.Len()
			if derr := t.content.AppendBytes(chunk[:cut]); derr != nil {
				tracer().Errorf("error decoding text fragment: %v", derr)
				t.err = derr
				return
			}
			t.publish(Fragment{
				Pos:   pos - int64(rem),
				Bytes: cut,
				Chars: t.content.Len() - before,
			})
			rem = copy(frag, chunk[cut:])
			pos += int64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			t.err = fmt.Errorf("error loading text fragment: %w", err)
			return
		}
	}
	if rem > 0 {
		// trailing bytes that never completed a character: decode best-effort
		before := t.content.Len()
		if derr := t.content.AppendBytes(frag[:rem]); derr != nil {
			t.err = derr
			return
		}
		t.publish(Fragment{Pos: pos - int64(rem), Bytes: rem, Chars: t.content.Len() - before})
	}
}

func (t *Text) publish(f Fragment) {
	t.frags = append(t.frags, f)
	t.cast.Pub(f)
}
