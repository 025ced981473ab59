package common

import (
	"fmt"
	"io/ioutil"
	"os"
)

// WriteFileAtomic writes newBytes to filePath. An existing file is first
// copied to filePath+".bak", and the new content is moved into place with a
// rename, so at least one of the two versions survives a crash.
func WriteFileAtomic(filePath string, newBytes []byte, mode os.FileMode) error {
	if _, err := os.Stat(filePath); !os.IsNotExist(err) {
		fileBytes, err := ioutil.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("Could not read file %v. %v", filePath, err)
		}
		if err = ioutil.WriteFile(filePath+".bak", fileBytes, mode); err != nil {
			return fmt.Errorf("Could not write file %v. %v", filePath+".bak", err)
		}
	}
	if err := ioutil.WriteFile(filePath+".new", newBytes, mode); err != nil {
		return fmt.Errorf("Could not write file %v. %v", filePath+".new", err)
	}
	return os.Rename(filePath+".new", filePath)
}
