package glue_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestGlue(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Glue Model Suite")
}
