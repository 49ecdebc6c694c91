package glue_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nandemo-ya/gluemodel/glue"
	"github.com/nandemo-ya/gluemodel/glue/ptr"
)

var _ = Describe("Enumerations", func() {
	Describe("Parse", func() {
		It("should round trip every modeled value", func() {
			for _, name := range glue.EnumNames() {
				values, ok := glue.EnumValues(name)
				Expect(ok).To(BeTrue(), name)
				Expect(values).NotTo(BeEmpty(), name)
				for _, v := range values {
					parsed, err := glue.ParseEnum(name, v)
					Expect(err).NotTo(HaveOccurred(), "%s %s", name, v)
					Expect(parsed).To(Equal(v))
				}
			}
		})

		It("should keep the canonical string separate from the constant name", func() {
			Expect(string(glue.ConnectionPropertyKeyUserName)).To(Equal("USERNAME"))
			Expect(glue.WorkerTypeG1x.String()).To(Equal("G.1X"))
			Expect(glue.WorkerTypeStandard.String()).To(Equal("Standard"))
			Expect(glue.S3EncryptionModeSses3.String()).To(Equal("SSE-S3"))
			Expect(glue.JobBookmarksEncryptionModeCsekms.String()).To(Equal("CSE-KMS"))
		})

		It("should return the matching constant", func() {
			v, err := glue.ParseWorkerType("G.2X")
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(glue.WorkerTypeG2x))
		})

		It("should reject an empty value", func() {
			_, err := glue.ParseConnectionType("")
			Expect(err).To(MatchError(glue.ErrEmptyEnumValue))
			Expect(err).To(MatchError(glue.ErrInvalidArgument))
		})

		It("should reject a nil value like an empty one", func() {
			_, err := glue.ParseJobRunStatePtr(nil)
			Expect(err).To(MatchError(glue.ErrEmptyEnumValue))

			v, err := glue.ParseJobRunStatePtr(ptr.String("SUCCEEDED"))
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(glue.JobRunStateSucceeded))
		})

		It("should reject an unknown value", func() {
			_, err := glue.ParseWorkflowRunStatus("PAUSED")
			Expect(err).To(MatchError(glue.ErrUnknownEnumValue))
			Expect(err).To(MatchError(glue.ErrInvalidArgument))
			Expect(err.Error()).To(ContainSubstring(`"PAUSED"`))
		})

		It("should be case sensitive", func() {
			_, err := glue.ParseConnectionType("jdbc")
			Expect(err).To(MatchError(glue.ErrUnknownEnumValue))
		})

		It("should reject an enumeration that is not modeled", func() {
			_, err := glue.ParseEnum("Color", "RED")
			Expect(err).To(MatchError(glue.ErrUnknownEnum))
		})
	})

	Describe("Values", func() {
		It("should list members in declaration order", func() {
			Expect(glue.WorkflowRunStatus("").Values()).To(Equal([]glue.WorkflowRunStatus{
				glue.WorkflowRunStatusRunning,
				glue.WorkflowRunStatusCompleted,
				glue.WorkflowRunStatusStopping,
				glue.WorkflowRunStatusStopped,
			}))
		})

		It("should return a copy", func() {
			values := glue.NodeType("").Values()
			values[0] = "MUTATED"
			Expect(glue.NodeType("").Values()[0]).To(Equal(glue.NodeTypeCrawler))
		})
	})

	Describe("JSON", func() {
		It("should decode a known value", func() {
			var run glue.JobRun
			Expect(json.Unmarshal([]byte(`{"JobRunState":"FAILED","WorkerType":"G.1X"}`), &run)).To(Succeed())
			Expect(run.JobRunState).To(Equal(ptr.Of(glue.JobRunStateFailed)))
			Expect(run.WorkerType).To(Equal(ptr.Of(glue.WorkerTypeG1x)))
		})

		It("should reject an unknown value", func() {
			var run glue.JobRun
			err := json.Unmarshal([]byte(`{"JobRunState":"EXPLODED"}`), &run)
			Expect(err).To(MatchError(glue.ErrUnknownEnumValue))
		})

		It("should decode lists of enums", func() {
			var perms glue.PrincipalPermissions
			Expect(json.Unmarshal([]byte(`{"Permissions":["SELECT","ALTER"]}`), &perms)).To(Succeed())
			Expect(perms.Permissions).To(Equal([]glue.Permission{glue.PermissionSelect, glue.PermissionAlter}))
		})
	})
})
