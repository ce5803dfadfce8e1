package organizer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"lukechampine.com/blake3"
)

// moveFile renames src onto dst, overwriting any existing file there. When
// the rename crosses filesystems it falls back to a verified copy followed
// by removing the source.
func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	var linkErr *os.LinkError
	if errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		if err := copyFileVerified(src, dst); err != nil {
			return fmt.Errorf("copying %s across filesystems: %w", src, err)
		}
		if err := os.Remove(src); err != nil {
			return fmt.Errorf("removing %s after copy: %w", src, err)
		}
		return nil
	}

	return fmt.Errorf("moving %s to %s: %w", src, dst, err)
}

// copyFileVerified copies src to dst and confirms the written stream matches
// the source by size and BLAKE3 digest. The destination is removed again
// when the copy cannot be verified.
func copyFileVerified(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	srcHash := blake3.New(32, nil)
	dstHash := blake3.New(32, nil)

	written, err := io.Copy(io.MultiWriter(out, dstHash), io.TeeReader(in, srcHash))
	if err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}

	if written != info.Size() {
		_ = os.Remove(dst)
		return fmt.Errorf("short copy: wrote %d of %d bytes", written, info.Size())
	}
	if !bytes.Equal(srcHash.Sum(nil), dstHash.Sum(nil)) {
		_ = os.Remove(dst)
		return errors.New("checksum mismatch between source and destination")
	}

	return os.Chmod(dst, info.Mode())
}
