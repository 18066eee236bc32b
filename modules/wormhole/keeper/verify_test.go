package keeper_test

import (
	"bytes"
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/makerdao/dss-wormhole/modules/wormhole/types"
)

func testDigest() common.Hash {
	return crypto.Keccak256Hash([]byte("wormhole test digest"))
}

func (s *KeeperTestSuite) registerOracles(keys []*ecdsa.PrivateKey) {
	s.Require().NoError(s.keeper.AddSigners(s.ctx, s.admin, oracleAddrs(keys)))
}

func (s *KeeperTestSuite) TestIsValidQuorum() {
	digest := testDigest()
	s.registerOracles(s.oracles[:5])

	testCases := []struct {
		name      string
		signers   []*ecdsa.PrivateKey
		threshold uint64
		expValid  bool
	}{
		{"threshold met exactly", s.oracles[:3], 3, true},
		{"threshold exceeded", s.oracles[:5], 3, true},
		{"single signer threshold one", s.oracles[:1], 1, true},
		{"unregistered signers dilute count", s.oracles[3:8], 4, false},
		{"no registered signers", s.oracles[5:8], 2, false},
		{"zero threshold empty bundle", nil, 0, false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			bundle := s.signBundle(digest, tc.signers)
			valid, err := s.keeper.IsValid(s.ctx, digest, bundle, tc.threshold)
			s.Require().NoError(err)
			s.Require().Equal(tc.expValid, valid)
		})
	}
}

func (s *KeeperTestSuite) TestIsValidInsufficientSignatureCount() {
	digest := testDigest()
	s.registerOracles(s.oracles[:2])

	bundle := s.signBundle(digest, s.oracles[:2])
	valid, err := s.keeper.IsValid(s.ctx, digest, bundle, 3)
	s.Require().ErrorIs(err, types.ErrInsufficientSignatureCount)
	s.Require().False(valid)
}

func (s *KeeperTestSuite) TestIsValidMalformedBundle() {
	digest := testDigest()

	bundle := s.signBundle(digest, s.oracles[:1])
	bundle = append(bundle, 0x42)

	valid, err := s.keeper.IsValid(s.ctx, digest, bundle, 1)
	s.Require().ErrorIs(err, types.ErrMalformedSignatureBundle)
	s.Require().False(valid)
}

func (s *KeeperTestSuite) TestIsValidBadRecoveryID() {
	digest := testDigest()
	s.registerOracles(s.oracles[:1])

	bundle := s.signBundle(digest, s.oracles[:1])
	bundle[64] = 29

	valid, err := s.keeper.IsValid(s.ctx, digest, bundle, 1)
	s.Require().ErrorIs(err, types.ErrInvalidRecoveryID)
	s.Require().False(valid)
}

func (s *KeeperTestSuite) TestIsValidDuplicateSigner() {
	digest := testDigest()
	s.registerOracles(s.oracles[:1])

	single := s.signBundle(digest, s.oracles[:1])
	bundle := append(append([]byte{}, single...), single...)

	// duplicates fail the ordering check regardless of registry contents
	valid, err := s.keeper.IsValid(s.ctx, digest, bundle, 2)
	s.Require().ErrorIs(err, types.ErrBadSignatureOrder)
	s.Require().False(valid)
}

func (s *KeeperTestSuite) TestIsValidDescendingOrder() {
	digest := testDigest()
	s.registerOracles(s.oracles[:2])

	ascending := s.signBundle(digest, s.oracles[:2])
	descending := append(
		append([]byte{}, ascending[types.SignatureLength:]...),
		ascending[:types.SignatureLength]...,
	)

	valid, err := s.keeper.IsValid(s.ctx, digest, descending, 2)
	s.Require().ErrorIs(err, types.ErrBadSignatureOrder)
	s.Require().False(valid)
}

func (s *KeeperTestSuite) TestIsValidNullRecoveryRejected() {
	digest := testDigest()
	s.registerOracles(s.oracles[:2])

	// r = s = 0 cannot recover and yields the zero address, which never
	// strictly exceeds the previous signer
	garbage := make([]byte, types.SignatureLength)
	garbage[64] = 27

	valid, err := s.keeper.IsValid(s.ctx, digest, garbage, 0)
	s.Require().ErrorIs(err, types.ErrBadSignatureOrder)
	s.Require().False(valid)

	// padding a valid bundle with garbage aborts instead of inflating the count
	bundle := append(s.signBundle(digest, s.oracles[:2]), garbage...)
	valid, err = s.keeper.IsValid(s.ctx, digest, bundle, 3)
	s.Require().ErrorIs(err, types.ErrBadSignatureOrder)
	s.Require().False(valid)
}

func (s *KeeperTestSuite) TestIsValidShortCircuit() {
	digest := testDigest()
	s.registerOracles(s.oracles[:1])

	// the second record carries an illegal recovery id; reaching it would
	// abort the call, so success proves it was never decoded
	bundle := s.signBundle(digest, s.oracles[:1])
	trailing := bytes.Repeat([]byte{0xFF}, types.SignatureLength)
	bundle = append(bundle, trailing...)

	valid, err := s.keeper.IsValid(s.ctx, digest, bundle, 1)
	s.Require().NoError(err)
	s.Require().True(valid)
}

func (s *KeeperTestSuite) TestIsValidCorruptedSignature() {
	digest := testDigest()
	s.registerOracles(s.oracles[:1])

	bundle := s.signBundle(digest, s.oracles[:1])
	bundle[63] ^= 0xFF // low byte of s

	valid, err := s.keeper.IsValid(s.ctx, digest, bundle, 1)
	s.Require().NoError(err)
	s.Require().False(valid)
}

func (s *KeeperTestSuite) TestIsValidThirtyOracleQuorum() {
	digest := testDigest()

	oracles := make([]*ecdsa.PrivateKey, 30)
	for i := range oracles {
		key, err := crypto.GenerateKey()
		s.Require().NoError(err)
		oracles[i] = key
	}
	s.registerOracles(oracles)
	bundle := s.signBundle(digest, oracles)

	valid, err := s.keeper.IsValid(s.ctx, digest, bundle, 30)
	s.Require().NoError(err)
	s.Require().True(valid)

	// removing a single signer drops the same bundle below quorum
	s.Require().NoError(s.keeper.RemoveSigners(s.ctx, s.admin, oracleAddrs(oracles[:1])))

	valid, err = s.keeper.IsValid(s.ctx, digest, bundle, 30)
	s.Require().NoError(err)
	s.Require().False(valid)
}

func (s *KeeperTestSuite) TestIsValidThresholdReadLive() {
	digest := testDigest()
	s.registerOracles(s.oracles[:3])
	bundle := s.signBundle(digest, s.oracles[:3])

	s.Require().NoError(s.keeper.File(s.ctx, s.admin, types.ParamThreshold, 3))
	valid, err := s.keeper.IsValid(s.ctx, digest, bundle, s.keeper.GetThreshold(s.ctx))
	s.Require().NoError(err)
	s.Require().True(valid)

	s.Require().NoError(s.keeper.File(s.ctx, s.admin, types.ParamThreshold, 4))
	_, err = s.keeper.IsValid(s.ctx, digest, bundle, s.keeper.GetThreshold(s.ctx))
	s.Require().ErrorIs(err, types.ErrInsufficientSignatureCount)
}
