// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/resonara/resonara_backend/internal/repo/organization"
	"github.com/resonara/resonara_backend/internal/repo/orgmember"
	"github.com/resonara/resonara_backend/internal/repo/question"
	"github.com/resonara/resonara_backend/internal/repo/reportdraft"
	"github.com/resonara/resonara_backend/internal/repo/submission"
	"github.com/resonara/resonara_backend/internal/repo/taker"
	"github.com/resonara/resonara_backend/internal/repo/test"
	"github.com/resonara/resonara_backend/internal/repo/testlink"
	"github.com/resonara/resonara_backend/internal/repo/testresult"
	"github.com/resonara/resonara_backend/internal/repo/user"
	"github.com/resonara/resonara_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	orgmemberMixin := schema.OrgMember{}.Mixin()
	orgmemberMixinFields0 := orgmemberMixin[0].Fields()
	_ = orgmemberMixinFields0
	orgmemberMixinFields1 := orgmemberMixin[1].Fields()
	_ = orgmemberMixinFields1
	orgmemberFields := schema.OrgMember{}.Fields()
	_ = orgmemberFields
	// orgmemberDescCreatedAt is the schema descriptor for created_at field.
	orgmemberDescCreatedAt := orgmemberMixinFields1[0].Descriptor()
	// orgmember.DefaultCreatedAt holds the default value on creation for the created_at field.
	orgmember.DefaultCreatedAt = orgmemberDescCreatedAt.Default.(func() time.Time)
	// orgmemberDescUpdatedAt is the schema descriptor for updated_at field.
	orgmemberDescUpdatedAt := orgmemberMixinFields1[1].Descriptor()
	// orgmember.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	orgmember.DefaultUpdatedAt = orgmemberDescUpdatedAt.Default.(func() time.Time)
	// orgmember.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	orgmember.UpdateDefaultUpdatedAt = orgmemberDescUpdatedAt.UpdateDefault.(func() time.Time)
	// orgmemberDescIsActive is the schema descriptor for is_active field.
	orgmemberDescIsActive := orgmemberFields[3].Descriptor()
	// orgmember.DefaultIsActive holds the default value on creation for the is_active field.
	orgmember.DefaultIsActive = orgmemberDescIsActive.Default.(bool)
	// orgmemberDescID is the schema descriptor for id field.
	orgmemberDescID := orgmemberMixinFields0[0].Descriptor()
	// orgmember.DefaultID holds the default value on creation for the id field.
	orgmember.DefaultID = orgmemberDescID.Default.(func() uuid.UUID)
	organizationMixin := schema.Organization{}.Mixin()
	organizationMixinFields0 := organizationMixin[0].Fields()
	_ = organizationMixinFields0
	organizationMixinFields1 := organizationMixin[1].Fields()
	_ = organizationMixinFields1
	organizationFields := schema.Organization{}.Fields()
	_ = organizationFields
	// organizationDescCreatedAt is the schema descriptor for created_at field.
	organizationDescCreatedAt := organizationMixinFields1[0].Descriptor()
	// organization.DefaultCreatedAt holds the default value on creation for the created_at field.
	organization.DefaultCreatedAt = organizationDescCreatedAt.Default.(func() time.Time)
	// organizationDescUpdatedAt is the schema descriptor for updated_at field.
	organizationDescUpdatedAt := organizationMixinFields1[1].Descriptor()
	// organization.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	organization.DefaultUpdatedAt = organizationDescUpdatedAt.Default.(func() time.Time)
	// organization.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	organization.UpdateDefaultUpdatedAt = organizationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// organizationDescSlug is the schema descriptor for slug field.
	organizationDescSlug := organizationFields[0].Descriptor()
	// organization.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	organization.SlugValidator = func() func(string) error {
		validators := organizationDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// organizationDescName is the schema descriptor for name field.
	organizationDescName := organizationFields[1].Descriptor()
	// organization.NameValidator is a validator for the "name" field. It is called by the builders before save.
	organization.NameValidator = func() func(string) error {
		validators := organizationDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// organizationDescBrandPrimary is the schema descriptor for brand_primary field.
	organizationDescBrandPrimary := organizationFields[2].Descriptor()
	// organization.DefaultBrandPrimary holds the default value on creation for the brand_primary field.
	organization.DefaultBrandPrimary = organizationDescBrandPrimary.Default.(string)
	// organization.BrandPrimaryValidator is a validator for the "brand_primary" field. It is called by the builders before save.
	organization.BrandPrimaryValidator = organizationDescBrandPrimary.Validators[0].(func(string) error)
	// organizationDescBrandSecondary is the schema descriptor for brand_secondary field.
	organizationDescBrandSecondary := organizationFields[3].Descriptor()
	// organization.DefaultBrandSecondary holds the default value on creation for the brand_secondary field.
	organization.DefaultBrandSecondary = organizationDescBrandSecondary.Default.(string)
	// organization.BrandSecondaryValidator is a validator for the "brand_secondary" field. It is called by the builders before save.
	organization.BrandSecondaryValidator = organizationDescBrandSecondary.Validators[0].(func(string) error)
	// organizationDescFramework is the schema descriptor for framework field.
	organizationDescFramework := organizationFields[4].Descriptor()
	// organization.DefaultFramework holds the default value on creation for the framework field.
	organization.DefaultFramework = organizationDescFramework.Default.(string)
	// organization.FrameworkValidator is a validator for the "framework" field. It is called by the builders before save.
	organization.FrameworkValidator = organizationDescFramework.Validators[0].(func(string) error)
	// organizationDescIsActive is the schema descriptor for is_active field.
	organizationDescIsActive := organizationFields[5].Descriptor()
	// organization.DefaultIsActive holds the default value on creation for the is_active field.
	organization.DefaultIsActive = organizationDescIsActive.Default.(bool)
	// organizationDescID is the schema descriptor for id field.
	organizationDescID := organizationMixinFields0[0].Descriptor()
	// organization.DefaultID holds the default value on creation for the id field.
	organization.DefaultID = organizationDescID.Default.(func() uuid.UUID)
	questionMixin := schema.Question{}.Mixin()
	questionMixinFields0 := questionMixin[0].Fields()
	_ = questionMixinFields0
	questionMixinFields1 := questionMixin[1].Fields()
	_ = questionMixinFields1
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionMixinFields1[0].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescUpdatedAt is the schema descriptor for updated_at field.
	questionDescUpdatedAt := questionMixinFields1[1].Descriptor()
	// question.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	question.DefaultUpdatedAt = questionDescUpdatedAt.Default.(func() time.Time)
	// question.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	question.UpdateDefaultUpdatedAt = questionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// questionDescPosition is the schema descriptor for position field.
	questionDescPosition := questionFields[1].Descriptor()
	// question.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	question.PositionValidator = questionDescPosition.Validators[0].(func(int) error)
	// questionDescPrompt is the schema descriptor for prompt field.
	questionDescPrompt := questionFields[2].Descriptor()
	// question.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	question.PromptValidator = questionDescPrompt.Validators[0].(func(string) error)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionMixinFields0[0].Descriptor()
	// question.DefaultID holds the default value on creation for the id field.
	question.DefaultID = questionDescID.Default.(func() uuid.UUID)
	reportdraftMixin := schema.ReportDraft{}.Mixin()
	reportdraftMixinFields0 := reportdraftMixin[0].Fields()
	_ = reportdraftMixinFields0
	reportdraftMixinFields1 := reportdraftMixin[1].Fields()
	_ = reportdraftMixinFields1
	reportdraftFields := schema.ReportDraft{}.Fields()
	_ = reportdraftFields
	// reportdraftDescCreatedAt is the schema descriptor for created_at field.
	reportdraftDescCreatedAt := reportdraftMixinFields1[0].Descriptor()
	// reportdraft.DefaultCreatedAt holds the default value on creation for the created_at field.
	reportdraft.DefaultCreatedAt = reportdraftDescCreatedAt.Default.(func() time.Time)
	// reportdraftDescUpdatedAt is the schema descriptor for updated_at field.
	reportdraftDescUpdatedAt := reportdraftMixinFields1[1].Descriptor()
	// reportdraft.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reportdraft.DefaultUpdatedAt = reportdraftDescUpdatedAt.Default.(func() time.Time)
	// reportdraft.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reportdraft.UpdateDefaultUpdatedAt = reportdraftDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reportdraftDescProfileCode is the schema descriptor for profile_code field.
	reportdraftDescProfileCode := reportdraftFields[1].Descriptor()
	// reportdraft.ProfileCodeValidator is a validator for the "profile_code" field. It is called by the builders before save.
	reportdraft.ProfileCodeValidator = func() func(string) error {
		validators := reportdraftDescProfileCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(profile_code string) error {
			for _, fn := range fns {
				if err := fn(profile_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reportdraftDescID is the schema descriptor for id field.
	reportdraftDescID := reportdraftMixinFields0[0].Descriptor()
	// reportdraft.DefaultID holds the default value on creation for the id field.
	reportdraft.DefaultID = reportdraftDescID.Default.(func() uuid.UUID)
	submissionMixin := schema.Submission{}.Mixin()
	submissionMixinFields0 := submissionMixin[0].Fields()
	_ = submissionMixinFields0
	submissionMixinFields1 := submissionMixin[1].Fields()
	_ = submissionMixinFields1
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionMixinFields1[0].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
	// submissionDescUpdatedAt is the schema descriptor for updated_at field.
	submissionDescUpdatedAt := submissionMixinFields1[1].Descriptor()
	// submission.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	submission.DefaultUpdatedAt = submissionDescUpdatedAt.Default.(func() time.Time)
	// submission.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	submission.UpdateDefaultUpdatedAt = submissionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// submissionDescTotalPoints is the schema descriptor for total_points field.
	submissionDescTotalPoints := submissionFields[5].Descriptor()
	// submission.DefaultTotalPoints holds the default value on creation for the total_points field.
	submission.DefaultTotalPoints = submissionDescTotalPoints.Default.(int)
	// submissionDescVersion is the schema descriptor for version field.
	submissionDescVersion := submissionFields[7].Descriptor()
	// submission.DefaultVersion holds the default value on creation for the version field.
	submission.DefaultVersion = submissionDescVersion.Default.(int)
	// submissionDescID is the schema descriptor for id field.
	submissionDescID := submissionMixinFields0[0].Descriptor()
	// submission.DefaultID holds the default value on creation for the id field.
	submission.DefaultID = submissionDescID.Default.(func() uuid.UUID)
	takerMixin := schema.Taker{}.Mixin()
	takerMixinFields0 := takerMixin[0].Fields()
	_ = takerMixinFields0
	takerMixinFields1 := takerMixin[1].Fields()
	_ = takerMixinFields1
	takerFields := schema.Taker{}.Fields()
	_ = takerFields
	// takerDescCreatedAt is the schema descriptor for created_at field.
	takerDescCreatedAt := takerMixinFields1[0].Descriptor()
	// taker.DefaultCreatedAt holds the default value on creation for the created_at field.
	taker.DefaultCreatedAt = takerDescCreatedAt.Default.(func() time.Time)
	// takerDescName is the schema descriptor for name field.
	takerDescName := takerFields[1].Descriptor()
	// taker.NameValidator is a validator for the "name" field. It is called by the builders before save.
	taker.NameValidator = func() func(string) error {
		validators := takerDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// takerDescEmail is the schema descriptor for email field.
	takerDescEmail := takerFields[2].Descriptor()
	// taker.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	taker.EmailValidator = takerDescEmail.Validators[0].(func(string) error)
	// takerDescPhone is the schema descriptor for phone field.
	takerDescPhone := takerFields[3].Descriptor()
	// taker.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	taker.PhoneValidator = takerDescPhone.Validators[0].(func(string) error)
	// takerDescID is the schema descriptor for id field.
	takerDescID := takerMixinFields0[0].Descriptor()
	// taker.DefaultID holds the default value on creation for the id field.
	taker.DefaultID = takerDescID.Default.(func() uuid.UUID)
	testMixin := schema.Test{}.Mixin()
	testMixinFields0 := testMixin[0].Fields()
	_ = testMixinFields0
	testMixinFields1 := testMixin[1].Fields()
	_ = testMixinFields1
	testFields := schema.Test{}.Fields()
	_ = testFields
	// testDescCreatedAt is the schema descriptor for created_at field.
	testDescCreatedAt := testMixinFields1[0].Descriptor()
	// test.DefaultCreatedAt holds the default value on creation for the created_at field.
	test.DefaultCreatedAt = testDescCreatedAt.Default.(func() time.Time)
	// testDescUpdatedAt is the schema descriptor for updated_at field.
	testDescUpdatedAt := testMixinFields1[1].Descriptor()
	// test.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	test.DefaultUpdatedAt = testDescUpdatedAt.Default.(func() time.Time)
	// test.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	test.UpdateDefaultUpdatedAt = testDescUpdatedAt.UpdateDefault.(func() time.Time)
	// testDescName is the schema descriptor for name field.
	testDescName := testFields[1].Descriptor()
	// test.NameValidator is a validator for the "name" field. It is called by the builders before save.
	test.NameValidator = func() func(string) error {
		validators := testDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// testDescQuestionCount is the schema descriptor for question_count field.
	testDescQuestionCount := testFields[3].Descriptor()
	// test.DefaultQuestionCount holds the default value on creation for the question_count field.
	test.DefaultQuestionCount = testDescQuestionCount.Default.(int)
	// test.QuestionCountValidator is a validator for the "question_count" field. It is called by the builders before save.
	test.QuestionCountValidator = testDescQuestionCount.Validators[0].(func(int) error)
	// testDescIsActive is the schema descriptor for is_active field.
	testDescIsActive := testFields[4].Descriptor()
	// test.DefaultIsActive holds the default value on creation for the is_active field.
	test.DefaultIsActive = testDescIsActive.Default.(bool)
	// testDescID is the schema descriptor for id field.
	testDescID := testMixinFields0[0].Descriptor()
	// test.DefaultID holds the default value on creation for the id field.
	test.DefaultID = testDescID.Default.(func() uuid.UUID)
	testlinkMixin := schema.TestLink{}.Mixin()
	testlinkMixinFields0 := testlinkMixin[0].Fields()
	_ = testlinkMixinFields0
	testlinkMixinFields1 := testlinkMixin[1].Fields()
	_ = testlinkMixinFields1
	testlinkFields := schema.TestLink{}.Fields()
	_ = testlinkFields
	// testlinkDescCreatedAt is the schema descriptor for created_at field.
	testlinkDescCreatedAt := testlinkMixinFields1[0].Descriptor()
	// testlink.DefaultCreatedAt holds the default value on creation for the created_at field.
	testlink.DefaultCreatedAt = testlinkDescCreatedAt.Default.(func() time.Time)
	// testlinkDescToken is the schema descriptor for token field.
	testlinkDescToken := testlinkFields[2].Descriptor()
	// testlink.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	testlink.TokenValidator = func() func(string) error {
		validators := testlinkDescToken.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(token string) error {
			for _, fn := range fns {
				if err := fn(token); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// testlinkDescMaxUses is the schema descriptor for max_uses field.
	testlinkDescMaxUses := testlinkFields[3].Descriptor()
	// testlink.MaxUsesValidator is a validator for the "max_uses" field. It is called by the builders before save.
	testlink.MaxUsesValidator = testlinkDescMaxUses.Validators[0].(func(int) error)
	// testlinkDescUseCount is the schema descriptor for use_count field.
	testlinkDescUseCount := testlinkFields[4].Descriptor()
	// testlink.DefaultUseCount holds the default value on creation for the use_count field.
	testlink.DefaultUseCount = testlinkDescUseCount.Default.(int)
	// testlink.UseCountValidator is a validator for the "use_count" field. It is called by the builders before save.
	testlink.UseCountValidator = testlinkDescUseCount.Validators[0].(func(int) error)
	// testlinkDescID is the schema descriptor for id field.
	testlinkDescID := testlinkMixinFields0[0].Descriptor()
	// testlink.DefaultID holds the default value on creation for the id field.
	testlink.DefaultID = testlinkDescID.Default.(func() uuid.UUID)
	testresultMixin := schema.TestResult{}.Mixin()
	testresultMixinFields0 := testresultMixin[0].Fields()
	_ = testresultMixinFields0
	testresultMixinFields1 := testresultMixin[1].Fields()
	_ = testresultMixinFields1
	testresultFields := schema.TestResult{}.Fields()
	_ = testresultFields
	// testresultDescCreatedAt is the schema descriptor for created_at field.
	testresultDescCreatedAt := testresultMixinFields1[0].Descriptor()
	// testresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	testresult.DefaultCreatedAt = testresultDescCreatedAt.Default.(func() time.Time)
	// testresultDescTotalPoints is the schema descriptor for total_points field.
	testresultDescTotalPoints := testresultFields[4].Descriptor()
	// testresult.DefaultTotalPoints holds the default value on creation for the total_points field.
	testresult.DefaultTotalPoints = testresultDescTotalPoints.Default.(int)
	// testresultDescProfileCode is the schema descriptor for profile_code field.
	testresultDescProfileCode := testresultFields[5].Descriptor()
	// testresult.ProfileCodeValidator is a validator for the "profile_code" field. It is called by the builders before save.
	testresult.ProfileCodeValidator = func() func(string) error {
		validators := testresultDescProfileCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(profile_code string) error {
			for _, fn := range fns {
				if err := fn(profile_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// testresultDescProfileName is the schema descriptor for profile_name field.
	testresultDescProfileName := testresultFields[6].Descriptor()
	// testresult.ProfileNameValidator is a validator for the "profile_name" field. It is called by the builders before save.
	testresult.ProfileNameValidator = func() func(string) error {
		validators := testresultDescProfileName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(profile_name string) error {
			for _, fn := range fns {
				if err := fn(profile_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// testresultDescID is the schema descriptor for id field.
	testresultDescID := testresultMixinFields0[0].Descriptor()
	// testresult.DefaultID holds the default value on creation for the id field.
	testresult.DefaultID = testresultDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[1].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[3].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
